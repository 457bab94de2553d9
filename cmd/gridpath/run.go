package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/report"
	"github.com/pdrpinto/gridastar/internal/scenario"
)

var (
	runFormat string
	runCells  bool
	runJobs   int
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>...",
	Short: "Search one or more scenario files",
	Long: `Search each scenario file and print one report per file.

Scenarios are searched concurrently, each with its own engine. The command
fails if any scenario is rejected (for example a blocked start cell), after
all reports have been written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := runScenarios(cmd.Context(), args, runJobs, report.Options{IncludeCells: runCells})
		if err != nil {
			return err
		}
		if err := writeReports(cmd.OutOrStdout(), runFormat, reports); err != nil {
			return err
		}
		failed := 0
		for _, r := range reports {
			if r.Error != "" {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios rejected", failed, len(reports))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "yaml", "output format (yaml, json)")
	runCmd.Flags().BoolVar(&runCells, "cells", false, "include per-cell scores and parents")
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", runtime.NumCPU(), "maximum concurrent searches")
}

// runScenarios loads and searches every path. Unreadable or malformed files
// abort the whole run; rejected searches are reported per scenario.
func runScenarios(ctx context.Context, paths []string, jobs int, opts report.Options) ([]report.Report, error) {
	if jobs < 1 {
		jobs = 1
	}
	reports := make([]report.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := scenario.Load(path)
			if err != nil {
				return err
			}
			reports[i] = searchScenario(sc, logger.With(zap.String("scenario", sc.Name)), opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func searchScenario(sc *scenario.Scenario, log *zap.Logger, opts report.Options) report.Report {
	grid, res, err := sc.Run(gridastar.WithLogger(log))
	if err != nil {
		log.Warn("Scenario rejected", zap.Error(err))
		return report.Failed(sc.Name, err)
	}
	log.Info("Scenario searched",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("pathLen", len(res.Path)),
		zap.Int("expansions", res.Expansions))
	return report.New(sc.Name, grid, sc.Start.Coordinate(), sc.Goal.Coordinate(), res, opts)
}

func writeReports(w io.Writer, format string, reports []report.Report) error {
	var doc any = reports
	if len(reports) == 1 {
		doc = reports[0]
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New("unknown format " + format)
	}
}
