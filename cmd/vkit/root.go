package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vkit/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vkit",
		Short:         "vkit exercises slider widgets from declarative kit files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) level() string {
	if f != nil && f.verbose {
		return "debug"
	}
	return "info"
}

func newCommandLogger(cmd *cobra.Command, root *rootFlags, component string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         root.level(),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
}
