package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/haulplan/app"
	"github.com/kilianp07/haulplan/infra/logger"
	"github.com/kilianp07/haulplan/pkg/export"
)

var (
	planFormat string
	planOut    string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Search a schedule for the configured problem and export it",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	res, err := svc.Plan(ctx)
	if err != nil {
		return err
	}
	if res.Interrupted {
		logger.New("main").Warnf("search interrupted after %d iterations, exporting best schedule so far", res.Iterations)
	}

	var w io.Writer = cmd.OutOrStdout()
	if planOut != "" {
		f, err := os.Create(planOut)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.New("main").Errorf("close %s: %v", planOut, err)
			}
		}()
		w = f
	}
	if err := export.Write(w, planFormat, export.Rows(res.Best, svc.Instance)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
