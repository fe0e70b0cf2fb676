package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bigcalc/internal/diagfmt"
	"bigcalc/internal/driver"
	"bigcalc/internal/history"
	"bigcalc/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Start the interactive calculator",
	Long:  `Repl reads expression lines, evaluates them and prints results until exit`,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().Bool("plain", false, "line-oriented mode without the TUI")
}

func runRepl(cmd *cobra.Command, args []string) error {
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
	session, err := driver.NewSession(base, maxDiags)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.historyEnabled() {
		store, err = history.Open("bigcalc", cfg.History.Limit)
		if err != nil {
			// The REPL still works without persistence.
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
			store = nil
		}
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return fmt.Errorf("failed to get plain flag: %w", err)
	}
	if plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return runPlainRepl(cmd, session, store, cfg.Repl.Prompt)
	}

	model := ui.NewReplModel(session, store, cfg.Repl.Prompt, useColor(cmd, os.Stdout))
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}

// runPlainRepl is the fallback loop for pipes and --plain: one prompt, one
// line, one result, same as the TUI but without the screen handling.
func runPlainRepl(cmd *cobra.Command, session *driver.Session, store *history.Store, prompt string) error {
	out := cmd.OutOrStdout()
	colorErr := useColor(cmd, os.Stderr)
	fmt.Fprintf(out, "Welcome to bigcalc REPL (base %d)! Type 'exit' to quit.\n", session.Base())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	lineNo := 0
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		lineNo++
		res := session.EvalLine(fmt.Sprintf("repl:%d", lineNo), line)
		if !res.Ok {
			diagfmt.Pretty(os.Stderr, res.Bag, session.Inputs(), diagfmt.PrettyOpts{
				Color:     colorErr,
				ShowNotes: true,
			})
			continue
		}
		fmt.Fprintf(out, "Result: %s\n", res.Value)
		if err := store.Append(history.Entry{
			Expr:   line,
			Result: res.Value.String(),
			Base:   session.Base(),
			When:   time.Now(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
		}
	}
}
