package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/tally/internal/config"
	"git.sr.ht/~jakintosh/tally/internal/core"
	"git.sr.ht/~jakintosh/tally/internal/filter"
	"git.sr.ht/~jakintosh/tally/internal/ledger"
	"git.sr.ht/~jakintosh/tally/internal/report"
)

var errNoLedgerFile = errors.New("no ledger file given (use -f or set LEDGER_FILE)")

// settings resolves the configuration, letting flags the user set win.
func (a *app) settings(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		a.log.Debug("read config file", zap.String("path", cfg.Source))
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Files = a.files
	}
	if flags.Changed("color") {
		cfg.SetColor(report.ColorMode(a.color), "--color")
	}
	if flags.Changed("pager") {
		cfg.Pager = a.pager
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.cfg = cfg
	return cfg, nil
}

// loadLedger reads the configured files and applies the filter flags, with
// patterns as account prefixes.
func (a *app) loadLedger(cmd *cobra.Command, patterns []string) (*core.Ledger, error) {
	cfg, err := a.settings(cmd)
	if err != nil {
		return nil, err
	}
	if len(cfg.Files) == 0 {
		return nil, errNoLedgerFile
	}

	opts, err := a.filterOptions(patterns)
	if err != nil {
		return nil, err
	}

	l, summary, err := ledger.Load(ledger.Options{Strict: cfg.Strict, SortByDate: cfg.Sort}, cfg.Files...)
	for _, issue := range summary.Issues {
		a.log.Warn(issue.Message,
			zap.String("stage", issue.Stage),
			zap.String("path", issue.Path),
			zap.Int("line", issue.Line),
		)
	}
	if err != nil {
		return nil, err
	}
	if ce := a.log.Check(zap.DebugLevel, "loaded ledger"); ce != nil {
		ce.Write(
			zap.Strings("files", cfg.Files),
			zap.Int("journals", summary.Journals),
			zap.Int("transactions", summary.Transactions),
			zap.Int("postings", summary.Postings),
			zap.Int("accounts", filter.AccountTrie(l).Len()),
		)
	}

	if opts.IsZero() {
		return l, nil
	}
	return filter.Apply(l, opts)
}

func (a *app) filterOptions(patterns []string) (filter.Options, error) {
	opts := filter.Options{Patterns: patterns}

	where, err := filter.CompileWhere(a.where)
	if err != nil {
		return opts, err
	}
	opts.Where = where

	if opts.Begin, err = parseDate("begin", a.begin); err != nil {
		return opts, err
	}
	if opts.End, err = parseDate("end", a.end); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseDate accepts the two date layouts ledger files use. An empty value is
// the zero time.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --%s date '%s' (want YYYY-MM-DD)", flag, value)
}
