package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/haulplan/app"
	"github.com/kilianp07/haulplan/core/model"
	"github.com/kilianp07/haulplan/pkg/export"
)

var (
	neighbourTries  int
	neighbourWarmup int
)

var neighbourCmd = &cobra.Command{
	Use:   "neighbour",
	Short: "Print one random neighbour of the empty schedule",
	Long: "Applies --warmup random moves to the empty schedule, then prints the " +
		"next neighbour. Useful to inspect the moves the search is made of.",
	RunE: runNeighbour,
}

func init() {
	neighbourCmd.Flags().IntVar(&neighbourTries, "tries", 10, "attempts per move")
	neighbourCmd.Flags().IntVar(&neighbourWarmup, "warmup", 0, "random moves applied first")
	rootCmd.AddCommand(neighbourCmd)
}

func runNeighbour(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	current := svc.Generator.EmptySchedule()
	for i := 0; i < neighbourWarmup; i++ {
		next, ok, err := svc.Generator.Neighbour(current, neighbourTries)
		if err != nil {
			return err
		}
		if ok {
			current = next
		}
	}
	next, ok, err := svc.Generator.Neighbour(current, neighbourTries)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no neighbour found in %d tries", neighbourTries)
	}
	return printSchedules(cmd, svc, current, next)
}

func printSchedules(cmd *cobra.Command, svc *app.Service, current, next *model.Schedule) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, "current:"); err != nil {
		return err
	}
	if err := export.WriteCSV(out, export.Rows(current, svc.Instance)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "neighbour:"); err != nil {
		return err
	}
	return export.WriteCSV(out, export.Rows(next, svc.Instance))
}
