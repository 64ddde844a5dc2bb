package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/logger"
	"github.com/alexisbeaulieu97/vkit/internal/tui/playground"
	"github.com/alexisbeaulieu97/vkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vkit/internal/watch"
)

var errNotTerminal = errors.New("playground requires an interactive terminal")

type playgroundOptions struct {
	ConfigPath string
	Watch      bool
	LogFile    string
	Theme      string
}

func newPlaygroundCmd(root *rootFlags) *cobra.Command {
	opts := playgroundOptions{}

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Drag the sliders of a kit with the mouse",
		Long: `Playground renders every slider of a kit in the terminal and drives them
with mouse presses, drags and releases. With --watch, edits to the kit file
are applied without restarting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayground(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the kit file")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload the kit when the file changes")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file while the playground runs")
	cmd.Flags().StringVar(&opts.Theme, "theme", "default", "Track glyphs: default or ascii")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runPlayground(cmd *cobra.Command, root *rootFlags, opts playgroundOptions) error {
	kit, err := config.ParseKit(opts.ConfigPath)
	if err != nil {
		return err
	}
	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	logWriter := io.Discard
	if opts.LogFile != "" {
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		logWriter = file
	}
	log, err := logger.New(logger.Options{Level: root.level(), Writer: logWriter, Component: "playground"})
	if err != nil {
		return err
	}

	locator := playground.NewZoneLocator()
	defer locator.Close()

	modelOpts := []playground.Option{
		playground.WithLogger(log),
		playground.WithLocator(locator),
		playground.WithTheme(components.ThemeByName(opts.Theme)),
	}

	if opts.Watch {
		w, err := watch.New(opts.ConfigPath, 0)
		if err != nil {
			return err
		}
		defer w.Close()

		go func() {
			for err := range w.Errors() {
				log.Error(err, "kit watcher failed")
			}
		}()

		path := opts.ConfigPath
		modelOpts = append(modelOpts, playground.WithReload(w.Events(), func() (*config.Kit, error) {
			return config.ParseKit(path)
		}))
		log.With("path", w.Path()).Info("watching kit")
	}

	program := tea.NewProgram(
		playground.NewModel(kit, modelOpts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	log.With("sliders", len(kit.Sliders)).Info("playground started")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
