package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/logger"
	"github.com/alexisbeaulieu97/vkit/internal/replay"
	"github.com/alexisbeaulieu97/vkit/pkg/diff"
)

var errGoldenMismatch = errors.New("replay output differs from golden file")

type replayOptions struct {
	ConfigPath string
	ScriptPath string
	JSON       bool
	Golden     string
	Update     bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a scripted pointer interaction against a kit slider",
		Long: `Replay feeds the pointer events of a script to one slider of a kit over a
fixed track and prints every committed state. Events may carry expectations;
the first failed expectation stops the replay with exit code 3. With --golden
the report is compared against a stored copy and a line diff is printed on
mismatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the kit file")
	cmd.Flags().StringVarP(&opts.ScriptPath, "script", "s", "", "Path to the replay script")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the report in JSON format")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "Compare the report with this file")
	cmd.Flags().BoolVar(&opts.Update, "update-golden", false, "Rewrite the golden file with the current report")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func runReplay(cmd *cobra.Command, root *rootFlags, opts replayOptions) error {
	log, err := newCommandLogger(cmd, root, "command.replay")
	if err != nil {
		return err
	}

	kit, err := config.ParseKit(opts.ConfigPath)
	if err != nil {
		return err
	}
	script, err := replay.ParseScript(opts.ScriptPath)
	if err != nil {
		return err
	}

	report, runErr := replay.RunKit(kit, script, log)
	if report == nil {
		return runErr
	}

	var rendered bytes.Buffer
	if opts.JSON {
		err = replay.WriteJSON(&rendered, report)
	} else {
		err = replay.WriteText(&rendered, report)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(rendered.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if runErr != nil {
		log.Error(runErr, "replay expectation failed")
		return runErr
	}
	if opts.Golden != "" {
		return compareGolden(cmd, log, opts, rendered.Bytes())
	}
	return nil
}

func compareGolden(cmd *cobra.Command, log *logger.Logger, opts replayOptions, actual []byte) error {
	if opts.Update {
		if err := os.WriteFile(opts.Golden, actual, 0o644); err != nil {
			return fmt.Errorf("update golden file: %w", err)
		}
		log.Info("golden file updated")
		return nil
	}

	expected, err := os.ReadFile(opts.Golden)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}
	if d := diff.Lines(expected, actual, opts.Golden, "replay"); d != "" {
		added, removed := diff.Changed(expected, actual)
		fmt.Fprint(cmd.ErrOrStderr(), d)
		return fmt.Errorf("%w: %s (+%d -%d lines)", errGoldenMismatch, opts.Golden, added, removed)
	}
	return nil
}
