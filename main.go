package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/app"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/config"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if runtimeCfg.ListLanguages {
		if err := app.ListLanguages(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath, runtimeCfg.Logging.MaxSizeMB)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := detectTerminal(term.GetSize)
	runtimeCfg.App = withTerminal(runtimeCfg.App, tty)
	traceStartup(runtimeCfg, tty)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		_ = logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = logging.Close()
}

func traceStartup(cfg config.Config, tty *terminalSize) {
	events.App.Start(startupTracePayload(cfg, tty))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty *terminalSize) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if tty != nil {
		payload["tty"] = *tty
	}
	return payload
}

type terminalSize struct {
	Source string `json:"source"`
	Cols   int    `json:"cols"`
	Rows   int    `json:"rows"`
}

// detectTerminal returns the size of the first standard descriptor that is
// a terminal, or nil when none is.
func detectTerminal(getSize func(fd int) (int, int, error)) *terminalSize {
	descriptors := []struct {
		name string
		fd   uintptr
	}{
		{"stdout", os.Stdout.Fd()},
		{"stdin", os.Stdin.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	for _, d := range descriptors {
		cols, rows, err := getSize(int(d.fd))
		if err == nil && cols > 0 && rows > 0 {
			return &terminalSize{Source: d.name, Cols: cols, Rows: rows}
		}
	}
	return nil
}

// withTerminal hands the startup terminal size to the presenter so the
// first frame renders before any resize event.
func withTerminal(cfg app.Config, tty *terminalSize) app.Config {
	if tty != nil {
		cfg.TermCols, cfg.TermRows = tty.Cols, tty.Rows
	}
	return cfg
}
