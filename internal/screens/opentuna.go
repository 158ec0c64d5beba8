package screens

import (
	"context"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui/command"
)

// Payload selects the OpenTuna build for a console family.
type Payload int

const (
	PayloadSlims Payload = iota
	PayloadFats
	PayloadFat170
	PayloadUnsupported
)

var payloadFiles = [...]string{
	"OpenTuna_Slims.bin",
	"OpenTuna_FAT-110-120-150-160.bin",
	"OpenTuna_FAT-170.bin",
}

var payloadNames = [...]string{"slims", "fats", "fat170", "unsupported"}

func (p Payload) String() string {
	if p < 0 || int(p) >= len(payloadNames) {
		return "unsupported"
	}
	return payloadNames[p]
}

// File returns the payload image name, or "" when unsupported.
func (p Payload) File() string {
	if p < 0 || int(p) >= len(payloadFiles) {
		return ""
	}
	return payloadFiles[p]
}

// PayloadForROM picks the payload for a ROM version such as 0x0170.
func PayloadForROM(version uint16) Payload {
	switch {
	case version == 0:
		return PayloadUnsupported
	case version >= 0x190:
		return PayloadSlims
	case version == 0x170:
		return PayloadFat170
	case version >= 0x110:
		return PayloadFats
	}
	return PayloadUnsupported
}

// TunaAction is an OpenTuna operation.
type TunaAction int

const (
	TunaInstall TunaAction = iota
	TunaCleanup
)

func (a TunaAction) String() string {
	if a == TunaCleanup {
		return "cleanup"
	}
	return "install"
}

const (
	otAuto uint8 = iota + 1
	otManual
	otPayload
	otCleanup
	otReturn
)

// newOpenTunaMenu builds the OpenTuna screen. The payload enum only affects
// manual installs.
func newOpenTunaMenu() *menu.Menu {
	m := menu.New("opentuna",
		menu.NewLabel(0, lang.LblOTMenuTitle),
		menu.Layout(menu.Separator),
		menu.Layout(menu.Break),
		menu.NewButton(otAuto, lang.LblOTAuto, 0).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewButton(otManual, lang.LblOTManual, 0).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.Layout(menu.Tab),
		menu.NewLabel(0, lang.LblOTPayload),
		menu.Layout(menu.Tab),
		menu.NewEnum(otPayload, lang.LblOTPayloadSlims, lang.LblOTPayloadFats, lang.LblOTPayloadFat170),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewButton(otCleanup, lang.LblOTCleanup, 0).With(menu.PosMid),
		menu.Layout(menu.Break),
		menu.Layout(menu.Break),
		menu.NewButton(otReturn, lang.LblExit, 0).With(menu.PosMid),
	)
	m.Hints[1] = menu.Hint{Glyph: menu.GlyphCancel, Label: lang.LblExit}
	return m
}

// OpenTuna runs the OpenTuna screen until the user returns to the main menu.
func (in *Installer) OpenTuna(ctx context.Context) error {
	u, m := in.ui, in.tuna
	focus := int(otAuto)
	if err := u.Transition(m, ui.SlideLeftIn, focus); err != nil {
		return err
	}
	for {
		r, _, err := u.ExecuteMenu(ctx, m, focus, nil)
		if err != nil {
			return err
		}
		if r == ui.CancelResult || r == int(otReturn) {
			return u.Transition(m, ui.SlideLeftOut, focus)
		}
		focus = r

		var run func() error
		switch uint8(r) {
		case otAuto:
			run = func() error { return in.tunaAuto(ctx) }
		case otManual:
			run = func() error { return in.tunaManual(ctx, Payload(m.EnumIndex(otPayload))) }
		case otCleanup:
			run = func() error { return in.tunaCleanup(ctx) }
		default:
			continue
		}
		err = in.bus.Execute(ctx, command.Request{
			ID:      "opentuna-" + tunaName(uint8(r)),
			Label:   u.Strings().Label(lang.LblOTMenuTitle),
			Handler: func(context.Context) error { return run() },
		})
		if err != nil {
			return err
		}
	}
}

func tunaName(id uint8) string {
	switch id {
	case otAuto:
		return "auto"
	case otManual:
		return "manual"
	case otCleanup:
		return "cleanup"
	}
	return "unknown"
}

func (in *Installer) tunaAuto(ctx context.Context) error {
	u := in.ui
	payload := PayloadForROM(in.ops.ROMVersion())
	if payload == PayloadUnsupported {
		return u.DisplayError(ctx, lang.MsgOTUnsupported)
	}
	return in.tunaInstall(ctx, payload, lang.MsgOTAutoStart, lang.MsgOTSuccessAuto)
}

func (in *Installer) tunaManual(ctx context.Context, payload Payload) error {
	u := in.ui
	choice, err := u.DisplayPrompt(ctx, lang.MsgPromptContinue, lang.LblNo, lang.LblYes)
	if err != nil {
		return err
	}
	if choice != 2 {
		return u.DisplayInfo(ctx, lang.MsgOTManualCancelled)
	}
	return in.tunaInstall(ctx, payload, lang.MsgPleaseWait, lang.MsgOTSuccessManual)
}

func (in *Installer) tunaInstall(ctx context.Context, payload Payload, status, success lang.MsgID) error {
	u := in.ui
	card, err := in.pickCard(ctx)
	if err != nil || card == nil {
		return err
	}
	if err := u.DrawStatus(status); err != nil {
		return err
	}
	if err := in.ops.OpenTuna(ctx, TunaInstall, payload, card.Slot); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return u.DisplayError(ctx, lang.MsgOTInstallFailed)
	}
	return u.DisplayInfo(ctx, success)
}

func (in *Installer) tunaCleanup(ctx context.Context) error {
	u := in.ui
	card, err := in.pickCard(ctx)
	if err != nil || card == nil {
		return err
	}
	if err := u.DrawStatus(lang.MsgOTCleanupStart); err != nil {
		return err
	}
	if err := in.ops.OpenTuna(ctx, TunaCleanup, PayloadUnsupported, card.Slot); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return u.DisplayError(ctx, lang.MsgCleanupFailed)
	}
	return u.DisplayInfo(ctx, lang.MsgOTCleanupSuccess)
}
