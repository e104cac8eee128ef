package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sadopc/hartl/internal/app"
	"github.com/sadopc/hartl/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var errNotTerminal = errors.New("hartl needs an interactive terminal")

type options struct {
	watch   bool
	fps     int
	theme   string
	logFile string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hartl [file.har]",
		Short: "Timeline viewer for HAR archives",
		Long: `hartl draws the entries of an HTTP archive as a zoomable waterfall.

Drop a .har file onto the terminal or pass it as an argument.

Examples:
  hartl                         # start empty, paste a path later
  hartl capture.har             # open a file
  hartl --watch capture.har     # reload whenever the file changes`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := applyFlags(cmd, config.Load(), opts)
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cfg, path)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the file when it changes on disk")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "Frame rate of the render loop")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Color theme name")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file")
	return cmd
}

// applyFlags overrides cfg with the flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg config.Config, opts options) config.Config {
	flags := cmd.Flags()
	if flags.Changed("watch") {
		cfg.Watch = opts.watch
	}
	if flags.Changed("fps") {
		cfg.FPS = opts.fps
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	return cfg.Normalize()
}

func run(cfg config.Config, path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "hartl")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := app.New(cfg, path)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
