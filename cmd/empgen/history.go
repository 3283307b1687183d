package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/empgen/internal/config"
	"pkg.jsn.cam/empgen/pkg/history"
)

var errNoHistory = errors.New("no history database configured; pass --history or set history in the config file")

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHistory(func(s history.Store) error {
				runs, err := s.List()
				if err != nil {
					return err
				}
				a.printRuns(runs)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id %q: %w", args[0], err)
			}
			return a.withHistory(func(s history.Store) error {
				run, err := s.Get(id)
				if err != nil {
					return fmt.Errorf("run %s: %w", id, err)
				}
				a.printRun(run)
				return nil
			})
		},
	})
	return cmd
}

func (a *app) historyDB() (string, error) {
	if a.historyPath != "" {
		return a.historyPath, nil
	}
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return "", err
		}
		if cfg.History != "" {
			return cfg.History, nil
		}
	}
	return "", errNoHistory
}

func (a *app) withHistory(fn func(history.Store) error) error {
	path, err := a.historyDB()
	if err != nil {
		return err
	}
	s, err := a.openStore(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// openStore opens the bbolt ledger at path. Without a path runs are kept
// in memory for the lifetime of the process.
func openStore(path string) (history.Store, error) {
	if path == "" {
		return history.NewMemoryStore(), nil
	}
	return history.OpenBoltStore(path)
}

func (a *app) recordRun(path string, run history.Run) error {
	s, err := a.openStore(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(run)
}

func (a *app) printRuns(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(a.stdout, "No runs recorded")
		return
	}

	fmt.Fprintf(a.stdout, "%-36s %-19s %-12s %-10s %-10s %s\n", "RUN ID", "STARTED", "SEED", "TARGET", "SIZE", "PATH")
	fmt.Fprintln(a.stdout, strings.Repeat("─", 100))
	for _, run := range runs {
		fmt.Fprintf(a.stdout, "%-36s %-19s %-12d %-10s %-10s %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Seed,
			humanize.IBytes(uint64(run.TargetBytes)),
			humanize.IBytes(uint64(run.Bytes)),
			run.Path)
	}
}

func (a *app) printRun(run history.Run) {
	fmt.Fprintf(a.stdout, "Run Details:\n")
	fmt.Fprintf(a.stdout, "  ID:          %s\n", run.ID)
	fmt.Fprintf(a.stdout, "  Path:        %s\n", run.Path)
	fmt.Fprintf(a.stdout, "  Seed:        %d\n", run.Seed)
	fmt.Fprintf(a.stdout, "  Target:      %s (%d bytes)\n", humanize.IBytes(uint64(run.TargetBytes)), run.TargetBytes)
	fmt.Fprintf(a.stdout, "  Flush:       %s\n", humanize.IBytes(uint64(run.FlushBytes)))
	fmt.Fprintf(a.stdout, "  Size:        %s (%d bytes)\n", humanize.IBytes(uint64(run.Bytes)), run.Bytes)
	fmt.Fprintf(a.stdout, "  Rows:        %s\n", humanize.Comma(run.Rows))
	fmt.Fprintf(a.stdout, "  Started:     %s (%s)\n", run.StartedAt.Local().Format(time.RFC3339), humanize.Time(run.StartedAt))
	fmt.Fprintf(a.stdout, "  Duration:    %s\n", run.Duration.Round(time.Millisecond))
	fmt.Fprintf(a.stdout, "\nReproduce with: empgen --out %s --bytes %d --seed %d --flush-bytes %d\n",
		run.Path, run.TargetBytes, run.Seed, run.FlushBytes)
}
