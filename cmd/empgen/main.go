package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/empgen/pkg/history"
)

/*generates a synthetic employees CSV of a bounded size for load testing*/

type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	openStore func(path string) (history.Store, error)

	configPath  string
	historyPath string
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newAppCmd(&app{stdout: stdout, stderr: stderr, openStore: openStore})
}

func newAppCmd(a *app) *cobra.Command {
	stdout, stderr := a.stdout, a.stderr
	gen := &generateFlags{}

	root := &cobra.Command{
		Use:   "empgen",
		Short: "Generate a synthetic employees CSV for load testing",
		Long: `empgen writes employee_id,name,department,salary,hire_date rows until the
next row would push the file past the target size. Output is reproducible
for a given seed and target size.

Examples:
  empgen --out data/employees.csv --bytes 1GiB --seed 42
  empgen --config empgen.toml --history runs.db
  empgen history --history runs.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, gen)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML or YAML config file")
	pf.StringVar(&a.historyPath, "history", "", "bbolt database recording each run")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	gen.register(root)
	root.AddCommand(newHistoryCmd(a))
	return root
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("failed to run command", "error", err)
		os.Exit(1)
	}
}
