package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Dicklesworthstone/ribbon/pkg/config"
	"github.com/Dicklesworthstone/ribbon/pkg/loader"
	"github.com/Dicklesworthstone/ribbon/pkg/ui"
	"github.com/Dicklesworthstone/ribbon/pkg/watcher"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Config file (default ./.ribbon/config.yaml)")
	logPath := flag.String("log", "", "Write debug log to this file")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit")
	noWatch := flag.Bool("no-watch", false, "Do not reload the config file when it changes")
	flag.Parse()

	if *help {
		fmt.Println("Usage: ribbon [options]")
		fmt.Println("\nA rainbow range slider on a flip card, driven by the mouse.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("ribbon version %s\n", version)
		os.Exit(0)
	}

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: ribbon needs an interactive terminal")
		os.Exit(1)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "ribbon")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg, path, !*noWatch); err != nil {
		fmt.Printf("Error running ribbon: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, string, error) {
	if path == "" {
		return loader.LoadConfig("")
	}
	cfg, err := loader.LoadConfigFromFile(path)
	return cfg, path, err
}

// run drives the program and, when watch is set, the config watcher. The
// watcher stops when the program exits.
func run(cfg config.Config, path string, watch bool) error {
	theme := ui.DefaultTheme(lipgloss.DefaultRenderer())
	m := ui.NewModel(cfg, theme)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if watch && path != "" {
		w := watcher.NewConfigWatcher(path, watcher.DefaultDebounceDuration)
		w.OnChange = func(c config.Config) {
			log.Printf("config reloaded from %s", path)
			p.Send(ui.ConfigReloadedMsg{Config: c})
		}
		w.OnError = func(err error) {
			p.Send(ui.ConfigErrorMsg{Err: err})
		}
		g.Go(func() error {
			// a dead watcher only disables live reload
			if err := w.Run(ctx); err != nil {
				log.Printf("Warning: config watcher stopped: %v", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}
