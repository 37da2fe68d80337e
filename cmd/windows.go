package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/haulplan/core/setup"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "Print the direct delivery start times of every booking",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	inst, err := setup.Build(cfg.Problem, nil)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CARGO\tFROM\tTO\tDRIVE\tSTART TIMES")
	for _, c := range slices.Sorted(maps.Keys(inst.Config.Cargo)) {
		info := inst.Config.Cargo[c]
		var starts []string
		for _, iv := range info.DirectDeliveryStartTimes.All() {
			starts = append(starts, fmt.Sprintf("[%d,%d)", iv.Start(), iv.End()))
		}
		if len(starts) == 0 {
			starts = append(starts, "none")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			inst.CargoName(c), inst.TerminalName(info.From), inst.TerminalName(info.To),
			info.DirectDrivingTime, strings.Join(starts, " "))
	}
	for _, name := range inst.Dropped {
		fmt.Fprintf(tw, "%s\t-\t-\t-\tdropped\n", name)
	}
	return tw.Flush()
}
