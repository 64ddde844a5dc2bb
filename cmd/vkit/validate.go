package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/slider"
	"github.com/alexisbeaulieu97/vkit/internal/ui/components"
)

type validateOptions struct {
	ConfigPath string
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a kit file and print the resolved slider bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newCommandLogger(cmd, root, "command.validate")
			if err != nil {
				return err
			}

			kit, err := config.ParseKit(opts.ConfigPath)
			if err != nil {
				return err
			}
			log.With("path", opts.ConfigPath).Debug("kit parsed")

			return writeKitSummary(cmd.OutOrStdout(), opts.ConfigPath, kit)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the kit file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func writeKitSummary(w io.Writer, path string, kit *config.Kit) error {
	fmt.Fprintf(w, "%s is valid (%d sliders)\n", path, len(kit.Sliders))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tBOUNDS\tSTOPS\tTHUMB")
	for _, spec := range kit.Sliders {
		cfg := spec.SliderConfig()
		bounds := slider.ResolveBounds(cfg)

		mode := "single"
		if cfg.IsRange {
			mode = "range"
		}

		fmt.Fprintf(tw, "%s\t%s\t[%s, %s]\t%s\t%spx\n",
			spec.ID,
			mode,
			components.FormatValue(bounds.Min, -1),
			components.FormatValue(bounds.Max, -1),
			formatStops(bounds.Stops),
			components.FormatValue(cfg.ThumbPx(), -1),
		)
	}
	return tw.Flush()
}

func formatStops(stops []float64) string {
	if len(stops) == 0 {
		return "-"
	}
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = components.FormatValue(s, -1)
	}
	return strings.Join(parts, ",")
}
