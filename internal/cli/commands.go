package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/tally/internal/core"
	"git.sr.ht/~jakintosh/tally/internal/filter"
	"git.sr.ht/~jakintosh/tally/internal/pager"
	"git.sr.ht/~jakintosh/tally/internal/report"
	"git.sr.ht/~jakintosh/tally/internal/version"
)

// reportFunc renders a ledger report.
type reportFunc func(w io.Writer, l *core.Ledger, style report.Style) error

func balanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "balance [PATTERN...]",
		Aliases: []string{"bal"},
		Short:   "Show the balance of every account and the grand total",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, "balance", args, report.BalanceFlat)
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "register [PATTERN...]",
		Aliases: []string{"reg"},
		Short:   "List postings with running totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, "register", args, report.Register)
		},
	}
}

func printCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print [PATTERN...]",
		Short: "Print the selected transactions in ledger format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, "print", args, printLedger)
		},
	}
}

func accountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts [PREFIX]",
		Short: "List account names, optionally only those starting with PREFIX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.loadLedger(cmd, nil)
			if err != nil {
				return err
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			accounts := filter.AccountTrie(l).Find(prefix)
			if len(accounts) == 0 {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(accounts, "\n"))
			return err
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Data())
			return err
		},
	}
}

// printLedger re-emits transactions in ledger format, separated by blank
// lines. Styling does not apply.
func printLedger(w io.Writer, l *core.Ledger, _ report.Style) error {
	var b strings.Builder
	first := true
	for tx := range l.Transactions() {
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(tx.String())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// runReport loads the ledger and writes the report to the command output,
// or to the pager when one is configured.
func (a *app) runReport(cmd *cobra.Command, name string, patterns []string, render reportFunc) error {
	l, err := a.loadLedger(cmd, patterns)
	if err != nil {
		return err
	}
	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}

	if !cfg.Pager {
		out := cmd.OutOrStdout()
		return render(out, l, report.NewStyle(out, cfg.Color))
	}

	var buf bytes.Buffer
	if err := render(&buf, l, report.NewStyle(os.Stdout, cfg.Color)); err != nil {
		return err
	}
	a.log.Debug("starting pager", zap.String("report", name), zap.Int("bytes", buf.Len()))
	return pager.Run(name, buf.String())
}
