package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/hovermenu/internal/app"
	"github.com/atomicstack/hovermenu/internal/config"
	"github.com/atomicstack/hovermenu/internal/logging"
	"github.com/atomicstack/hovermenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the menu was started with. Mouse and focus
// reporting only work on a real terminal, so the tty state is included.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	addOrError(payload, "executable", os.Executable)
	addOrError(payload, "cwd", os.Getwd)
	return payload
}

func addOrError(payload map[string]interface{}, key string, fn func() (string, error)) {
	if v, err := fn(); err == nil {
		payload[key] = v
	} else {
		payload[key+"Error"] = err.Error()
	}
}

type ttyDetails struct {
	Detected *ttySize         `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes stdin, stdout and stderr. The first terminal with
// a readable size is reported as detected.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	info := ttyDetails{Probes: make([]ttyProbeResult, 0, len(files))}
	for i, f := range files {
		probe := probeTTY(names[i], f)
		if info.Detected == nil && probe.IsTerminal && probe.Error == "" {
			info.Detected = &ttySize{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}

func probeTTY(name string, f *os.File) ttyProbeResult {
	res := ttyProbeResult{Name: name}
	if f == nil {
		res.Error = "not open"
		return res
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return res
	}
	res.IsTerminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Width, res.Height = w, h
	return res
}
