package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bigcalc/internal/diagfmt"
	"bigcalc/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] EXPR...",
	Short: "Evaluate expressions and print their results",
	Long:  `Eval computes each argument expression with arbitrary precision and prints one result per line`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Int("jobs", runtime.NumCPU(), "number of expressions evaluated in parallel")
}

type evalOutcome struct {
	session *driver.Session
	result  driver.EvalResult
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	base, err := effectiveBase(cmd, cfg)
	if err != nil {
		return err
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}

	// Expressions are independent, so they evaluate concurrently; each one
	// gets its own session because sessions are not goroutine-safe. Output
	// stays in argument order.
	outcomes := make([]evalOutcome, len(args))
	g := new(errgroup.Group)
	g.SetLimit(min(jobs, len(args)))
	for i, expr := range args {
		i, expr := i, expr
		g.Go(func() error {
			session, err := driver.NewSession(base, maxDiags)
			if err != nil {
				return err
			}
			outcomes[i] = evalOutcome{
				session: session,
				result:  session.EvalLine(fmt.Sprintf("arg:%d", i+1), expr),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	colorErr := useColor(cmd, os.Stderr)
	failed := 0
	for _, out := range outcomes {
		if out.result.Ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Result: %s\n", out.result.Value)
			continue
		}
		failed++
		diagfmt.Pretty(os.Stderr, out.result.Bag, out.session.Inputs(), diagfmt.PrettyOpts{
			Color:     colorErr,
			ShowNotes: true,
		})
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(args))
	}
	return nil
}
