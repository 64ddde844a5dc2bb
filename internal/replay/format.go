package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteText prints a human readable trace of the report.
func WriteText(w io.Writer, report *Report) error {
	if report == nil {
		return nil
	}

	fmt.Fprintf(w, "slider %s (%s) initial %s\n", report.Slider, report.Mode, report.Initial)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	commits := commitsByIndex(report.Commits)
	for _, step := range report.Steps {
		handled := "ignored"
		if step.Handled {
			handled = "ok"
		}
		state := "-"
		if c, ok := commits[step.Index]; ok {
			state = c.State.String()
		}
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n", step.Index, step.Type, orDash(step.Target), handled, state)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := report.Summary
	_, err := fmt.Fprintf(w, "final %s dragging=%t commits=%d min=%s max=%s\n",
		report.Final, report.Dragging, s.Commits, formatNumber(s.Min), formatNumber(s.Max))
	return err
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// commitsByIndex keeps the last commit of every event.
func commitsByIndex(commits []Commit) map[int]Commit {
	out := make(map[int]Commit, len(commits))
	for _, c := range commits {
		out[c.Index] = c
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
