package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/backend"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui/command"
)

// Card describes an inserted memory card.
type Card struct {
	Slot int
	Free uint64
}

// Task is a running operation. The progress screen samples it once per frame.
type Task interface {
	Snapshot() backend.Progress
	Done() <-chan struct{}
	Err() error
	Stop()
}

// Operations performs the work behind the menus.
type Operations interface {
	Capabilities() Capabilities
	Cards(ctx context.Context) ([]Card, error)
	// Required returns the bytes ev needs on the target card.
	Required(ev Event) uint64
	Start(ctx context.Context, ev Event, slot int) (Task, error)
	ROMVersion() uint16
	OpenTuna(ctx context.Context, action TunaAction, payload Payload, slot int) error
}

// Installer runs the installer screens.
type Installer struct {
	ui       *ui.UI
	ops      Operations
	bus      *command.Bus
	menus    *Menus
	tuna     *menu.Menu
	progress *ProgressScreen
	space    *SpaceScreen
}

// taskDone ends the progress loop when the job returns.
const taskDone = 1

// errCancelled marks a job the user stopped. It is never shown.
var errCancelled = errors.New("cancelled by user")

// NewInstaller builds the screens and registers the sibling menus with u.
func NewInstaller(u *ui.UI, ops Operations, version string) (*Installer, error) {
	ms, err := NewMenus(u.Menus(), version, ops.Capabilities())
	if err != nil {
		return nil, err
	}
	return &Installer{
		ui:       u,
		ops:      ops,
		bus:      command.New(),
		menus:    ms,
		tuna:     newOpenTunaMenu(),
		progress: NewProgressScreen(),
		space:    NewSpaceScreen(),
	}, nil
}

// Menus returns the sibling menus.
func (in *Installer) Menus() *Menus { return in.menus }

// Bus returns the bus operations run through.
func (in *Installer) Bus() *command.Bus { return in.bus }

// Run shows the main menu until the user quits.
func (in *Installer) Run(ctx context.Context) error {
	for {
		ev, err := in.MainMenu(ctx)
		if err != nil {
			return err
		}
		switch ev {
		case EventExit:
			return nil
		case EventOpenTuna:
			if err := in.OpenTuna(ctx); err != nil {
				return err
			}
		}
	}
}

// MainMenu runs the sibling menus and handles operations in place. It
// returns when the user confirms exit or opens the OpenTuna screen.
func (in *Installer) MainMenu(ctx context.Context) (Event, error) {
	u := in.ui
	current, focus := in.menus.Main, idInstall
	if err := u.Transition(current, ui.SlideLeftIn, int(focus)); err != nil {
		return EventNone, err
	}
	for {
		r, m, err := u.ExecuteMenu(ctx, current, int(focus), describe(&focus))
		if err != nil {
			return EventNone, err
		}
		current = m
		if r > 0 {
			focus = uint8(r)
		}

		ev := eventFor(r)
		switch ev {
		case EventNone:
			continue
		case EventOpenTuna:
			return ev, u.Transition(current, ui.SlideLeftOut, int(focus))
		case EventExit:
			if err := u.Transition(current, ui.SlideLeftOut, int(focus)); err != nil {
				return EventNone, err
			}
			choice, err := u.DisplayPrompt(ctx, lang.MsgQuit, lang.LblCancel, lang.LblOK)
			if err != nil {
				return EventNone, err
			}
			if choice == 2 {
				return ev, u.Transition(current, ui.FadeOut, int(focus))
			}
		default:
			if err := u.Transition(current, ui.SlideLeftOut, int(focus)); err != nil {
				return EventNone, err
			}
			if err := in.Perform(ctx, ev); err != nil {
				return EventNone, err
			}
		}
		if err := u.Transition(current, ui.SlideLeftIn, int(focus)); err != nil {
			return EventNone, err
		}
	}
}

// Perform runs ev through the command bus. Only UI failures are returned;
// operation failures are reported on screen.
func (in *Installer) Perform(ctx context.Context, ev Event) error {
	return in.bus.Execute(ctx, command.Request{
		ID:      ev.String(),
		Label:   in.label(ev),
		Handler: func(ctx context.Context) error { return in.handle(ctx, ev) },
	})
}

func (in *Installer) label(ev Event) string {
	for id, e := range buttonEvents {
		if e != ev {
			continue
		}
		for _, m := range []*menu.Menu{in.menus.Main, in.menus.Extras, in.menus.MC} {
			if it, ok := m.Item(id); ok {
				if p, ok := it.Payload.(*menu.ButtonPayload); ok {
					return in.ui.Strings().Label(p.Label)
				}
			}
		}
	}
	return ev.String()
}

type outcome struct {
	title         lang.LabelID
	confirm       lang.MsgID
	stop          lang.MsgID
	done, failed  lang.MsgID
	cancellable   bool
	statusFirst   bool
	warnMultiInst bool
}

var outcomes = map[Event]outcome{
	EventInstall:        {title: lang.LblInstalling, confirm: lang.MsgInstallCfm, done: lang.MsgInstallCompleted, failed: lang.MsgInstallFailed},
	EventMultiInstall:   {title: lang.LblInstalling, confirm: lang.MsgInstallCfm, done: lang.MsgInstallCompleted, failed: lang.MsgInstallFailed, warnMultiInst: true},
	EventCrossPSX:       {title: lang.LblInstalling, confirm: lang.MsgInstallCfm, done: lang.MsgInstallCompleted, failed: lang.MsgInstallFailed},
	EventUninstall:      {title: lang.LblUninstall, confirm: lang.MsgPromptContinue, done: lang.MsgCleanupCompleted, failed: lang.MsgCleanupFailed},
	EventDowngradeMulti: {title: lang.LblDowngradeMulti, confirm: lang.MsgPromptContinue, done: lang.MsgCleanupCompleted, failed: lang.MsgCleanupFailed},
	EventFormatMC:       {title: lang.LblFormatMC, confirm: lang.MsgFormatCfm, done: lang.MsgFormatCompleted, failed: lang.MsgFormatFailed, statusFirst: true},
	EventDumpMC:         {title: lang.LblDumpingMC, confirm: lang.MsgDumpCfm, stop: lang.MsgQuitDumping, done: lang.MsgDumpCompleted, failed: lang.MsgDumpFailed, cancellable: true},
	EventRestoreMC:      {title: lang.LblRestoringMC, confirm: lang.MsgRestoreCfm, stop: lang.MsgQuitRestoring, done: lang.MsgRestoreCompleted, failed: lang.MsgRestoreFailed, cancellable: true},
	EventInstallFHDB:    {title: lang.LblInstalling, confirm: lang.MsgInstallCfm, done: lang.MsgInstallCompleted, failed: lang.MsgInstallFailed},
	EventUninstallFHDB:  {title: lang.LblUninstallFHDB, confirm: lang.MsgPromptContinue, done: lang.MsgCleanupCompleted, failed: lang.MsgCleanupFailed},
	EventFormatHDD:      {title: lang.LblFormatHDD, confirm: lang.MsgPromptContinue, done: lang.MsgFormatCompleted, failed: lang.MsgFormatFailed, statusFirst: true},
}

func (in *Installer) handle(ctx context.Context, ev Event) error {
	o, ok := outcomes[ev]
	if !ok {
		return nil
	}
	u := in.ui

	slot := 0
	var card *Card
	switch {
	case ev.needsCard():
		c, err := in.pickCard(ctx)
		if err != nil || c == nil {
			return err
		}
		card, slot = c, c.Slot
	case ev.needsHDD():
		if !in.ops.Capabilities().HDD {
			return u.DisplayError(ctx, lang.MsgNoHDD)
		}
	}

	if o.warnMultiInst {
		if err := u.DisplayWarning(ctx, lang.MsgMultiWarn); err != nil {
			return err
		}
	}
	choice, err := u.DisplayPrompt(ctx, o.confirm, lang.LblNo, lang.LblYes)
	if err != nil || choice != 2 {
		return err
	}

	if card != nil {
		if required := in.ops.Required(ev); card.Free < required {
			events.Job.Space(ev.String(), card.Free, required)
			return in.space.Show(ctx, u, card.Free, required)
		}
	}
	if o.statusFirst {
		if err := u.DrawStatus(lang.MsgPleaseWait); err != nil {
			return err
		}
	}

	task, err := in.ops.Start(ctx, ev, slot)
	if err == nil {
		err = in.runTask(ctx, o, task)
	}
	switch {
	case errors.Is(err, errCancelled):
		return nil
	case isUIError(ctx, err):
		return err
	case err != nil:
		return u.DisplayError(ctx, o.failed)
	}
	return u.DisplayInfo(ctx, o.done)
}

// uiError wraps failures of the screen itself so they end the loop.
type uiError struct{ err error }

func (e uiError) Error() string { return e.err.Error() }
func (e uiError) Unwrap() error { return e.err }

func isUIError(ctx context.Context, err error) bool {
	var ue uiError
	return errors.As(err, &ue) || (err != nil && ctx.Err() != nil)
}

// runTask shows the progress screen until task returns. A cancellable job
// asks before stopping; others ignore cancel.
func (in *Installer) runTask(ctx context.Context, o outcome, task Task) error {
	u, p := in.ui, in.progress
	if err := p.Init(o.title); err != nil {
		return uiError{err}
	}
	update := func(*menu.Menu, int, int, pad.Buttons) int {
		if err := p.Update(task.Snapshot()); err != nil {
			return ui.CancelResult
		}
		select {
		case <-task.Done():
			return taskDone
		default:
			return 0
		}
	}
	for {
		r, _, err := u.ExecuteMenu(ctx, p.Menu(), 0, update)
		if err != nil {
			task.Stop()
			return uiError{err}
		}
		if r == taskDone {
			if err := task.Err(); err != nil {
				return fmt.Errorf("%s: %w", u.Strings().Label(o.title), err)
			}
			return nil
		}
		if !o.cancellable {
			continue
		}
		choice, err := u.DisplayPrompt(ctx, o.stop, lang.LblNo, lang.LblYes)
		if err != nil {
			task.Stop()
			return uiError{err}
		}
		if choice == 2 {
			task.Stop()
			<-task.Done()
			return errCancelled
		}
	}
}

// pickCard returns the target card, asking for a slot when both are used.
// It returns nil when there is none or the user backs out.
func (in *Installer) pickCard(ctx context.Context) (*Card, error) {
	u := in.ui
	cards, err := in.ops.Cards(ctx)
	if err != nil || len(cards) == 0 {
		return nil, u.DisplayError(ctx, lang.MsgNoMC)
	}
	if len(cards) == 1 {
		return &cards[0], nil
	}
	opts := [4]lang.LabelID{lang.LblSlot1, lang.LblSlot2, lang.NoLabel, lang.NoLabel}
	choice, err := u.ShowMessageBox(ctx, opts, u.Strings().Message(lang.MsgMultipleCards), lang.LblMemoryCard)
	if err != nil || choice == 0 {
		return nil, err
	}
	for i := range cards {
		if cards[i].Slot == choice-1 {
			return &cards[i], nil
		}
	}
	return nil, u.DisplayError(ctx, lang.MsgNoMC)
}
