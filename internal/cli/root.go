// Package cli wires the tally commands together.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/tally/internal/config"
)

// Execute runs the tally command line and exits with status 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	files   []string
	color   string
	pager   bool
	where   string
	begin   string
	end     string
	strict  bool
	verbose bool

	log *zap.Logger
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "tally",
		Short:        "Balance and register reports for plaintext ledger files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&a.files, "file", "f", nil, "ledger file to read (repeatable; default $LEDGER_FILE)")
	flags.StringVar(&a.color, "color", "auto", "highlight negative amounts: auto, always or never")
	flags.BoolVar(&a.pager, "pager", false, "show the report in a scrollable pager")
	flags.StringVar(&a.where, "where", "", "only postings matching an expression, e.g. \"amount < 0\"")
	flags.StringVar(&a.begin, "begin", "", "only transactions on or after this date")
	flags.StringVar(&a.end, "end", "", "only transactions before this date")
	flags.BoolVar(&a.strict, "strict", false, "fail on any parse or balancing issue")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		balanceCmd(a),
		registerCmd(a),
		printCmd(a),
		accountsCmd(a),
		versionCmd(),
	)
	return cmd
}
