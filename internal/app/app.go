package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/format/table"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/screens"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/term"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
)

// Version is shown on the main menu and the loading screen.
const Version = "1.0.0"

// loadingFrames is how long the loading screen shows before the menus.
const loadingFrames = 90

// Config describes user-provided application options.
type Config struct {
	FontPath    string
	SubFontPath string
	Language    string
	FPS         int
	RepeatDelay int
	RepeatRate  int
	SwapButtons bool
	Width       int
	Height      int
	// TermCols and TermRows are the terminal size seen at startup, zero when
	// no descriptor is a terminal.
	TermCols    int
	TermRows    int
}

// Run bootstraps the UI and executes the Bubble Tea program. The installer
// runs on its own goroutine and ends the program when it returns.
func Run(cfg Config) error {
	language, ok := lang.Find(cfg.Language)
	if !ok {
		return fmt.Errorf("unknown language %q", cfg.Language)
	}
	strs := lang.English()
	if language.Codec.Name() != strs.Codec().Name() {
		strs.Replace(nil, nil, language.Codec)
	}
	mapping := pad.DefaultMapping()
	if language.SwapButtons != cfg.SwapButtons {
		mapping = mapping.Swapped()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keypad := term.NewKeyPad(term.DefaultHoldFrames)
	presenter := term.NewPresenter(cfg.FPS)
	if cfg.TermCols > 0 && cfg.TermRows > 0 {
		presenter.ResizeWindow(cfg.TermCols, cfg.TermRows)
	}
	fb := gfx.NewFramebuffer(cfg.Width, cfg.Height, presenter.Present)
	u, err := ui.New(ui.Options{
		Backend:     fb,
		Pad:         keypad,
		Strings:     strs,
		FontPath:    cfg.FontPath,
		SubFontPath: cfg.SubFontPath,
		Mapping:     mapping,
		RepeatDelay: cfg.RepeatDelay,
		RepeatRate:  cfg.RepeatRate,
		Version:     Version,
	})
	if err != nil {
		return err
	}
	defer u.Deinit()

	inst, err := screens.NewInstaller(u, newDemoOps(), Version)
	if err != nil {
		return fmt.Errorf("build screens: %w", err)
	}

	model := term.NewModel("FMCBInstaller "+Version, term.DefaultKeyMap(), keypad, presenter, cancel)
	program := tea.NewProgram(model, tea.WithAltScreen())
	presenter.Attach(program.Send)

	finished := make(chan error, 1)
	go func() {
		err := runInstaller(ctx, u, inst)
		events.App.Stop(err)
		finished <- err
		program.Send(term.Done(err))
	}()

	_, err = program.Run()
	cancel()
	presenter.Close()
	uiErr := <-finished
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if uiErr != nil && !errors.Is(uiErr, context.Canceled) && !errors.Is(uiErr, term.ErrClosed) {
		return uiErr
	}
	return nil
}

func runInstaller(ctx context.Context, u *ui.UI, inst *screens.Installer) error {
	for f := 0; f < loadingFrames; f++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := u.ShowLoading(f); err != nil {
			return err
		}
	}
	return inst.Run(ctx)
}

// ListLanguages writes the supported languages as an aligned table.
func ListLanguages(w io.Writer) error {
	rows := [][]string{{"CODE", "NAME", "NATIVE", "ENCODING", "CONFIRM"}}
	for _, l := range lang.Languages {
		confirm := pad.DefaultMapping().Select
		if l.SwapButtons {
			confirm = pad.DefaultMapping().Swapped().Select
		}
		rows = append(rows, []string{l.Code, l.Name, l.Native, l.Codec.Name(), confirm.String()})
	}
	lines := table.Format(rows, nil)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
