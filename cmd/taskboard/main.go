// Command taskboard is a terminal task board built on the tripod MVC
// library: key input becomes notifications, commands mutate the task proxy,
// and a mediator feeds the refreshed list back into the bubbletea loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripod-mvc/tripod/controller"
	"github.com/tripod-mvc/tripod/facade"
	"github.com/tripod-mvc/tripod/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to taskboard config JSON file (optional)")
		logFile    = flag.String("log", "", "Path to a debug log file (optional)")
		verbose    = flag.Bool("verbose", false, "Log at debug level (overrides config)")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	events, closeLog, err := buildObserver(*logFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	app := facade.New(facade.WithObserver(events))

	proxy := NewTaskProxy(cfg.Seed)
	if err := app.RegisterProxy(proxy); err != nil {
		log.Fatalf("Failed to register task proxy: %v", err)
	}

	bindings := map[string]controller.Factory{
		noteTaskAdd:    func() controller.Command { return &addTaskCommand{proxy: proxy} },
		noteTaskToggle: func() controller.Command { return &toggleTaskCommand{proxy: proxy} },
		noteTaskRemove: func() controller.Command { return &removeTaskCommand{proxy: proxy} },
	}
	for name, factory := range bindings {
		if err := app.RegisterCommand(name, factory); err != nil {
			log.Fatalf("Failed to register command %q: %v", name, err)
		}
	}

	p := tea.NewProgram(newUI(app, proxy.Tasks()), tea.WithAltScreen())

	if err := app.RegisterMediator(&boardMediator{send: p.Send}); err != nil {
		log.Fatalf("Failed to register board mediator: %v", err)
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskboard: %v\n", err)
		os.Exit(1)
	}
}

// buildObserver wires the instrumentation sink. Without a log file the TUI
// owns the terminal, so events are discarded.
func buildObserver(path, level string) (observability.Observer, func(), error) {
	if path == "" {
		return observability.NoOpObserver{}, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
	return observability.NewSlogObserver(logger), func() { f.Close() }, nil
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
