// Package parser reads ledger-cli plaintext files into journals.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// ErrIncludeCycle is returned when a file includes itself, directly or not.
var ErrIncludeCycle = errors.New("include cycle")

// ParseFile reads a ledger-cli file and every file it includes. The file's own
// journal comes first, followed by the included journals in the order their
// include directives appear.
func ParseFile(filePath string) (core.ParseResult, error) {
	var result core.ParseResult
	if err := parseInto(&result, filePath, map[string]bool{}); err != nil {
		return core.ParseResult{}, err
	}
	return result, nil
}

func parseInto(result *core.ParseResult, filePath string, visiting map[string]bool) error {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if visiting[abs] {
		return fmt.Errorf("%s: %w", filePath, ErrIncludeCycle)
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	journal, includes, issues, err := parse(file, filePath)
	if err != nil {
		return err
	}

	// reserve our slot so includes land after this journal
	index := len(result.Journals)
	result.Journals = append(result.Journals, core.Journal{})
	result.Issues = append(result.Issues, issues...)

	for _, include := range includes {
		path := include
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filePath), path)
		}
		if err := parseInto(result, path, visiting); err != nil {
			return err
		}
	}

	result.Journals[index] = journal
	return nil
}

func parse(r io.Reader, name string) (core.Journal, []string, []core.ParseIssue, error) {
	var (
		journal            = core.Journal{Path: name}
		includes           []string
		issues             []core.ParseIssue
		scanner            = bufio.NewScanner(r)
		lineNumber         = 0
		currentTransaction *core.Transaction
	)

	flush := func() {
		if currentTransaction != nil {
			journal.Transactions = append(journal.Transactions, *currentTransaction)
			currentTransaction = nil
		}
	}

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		// Skip empty lines and comment lines
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if !unicode.IsSpace(rune(line[0])) {
			flush()

			switch {
			case strings.ContainsRune("#*%|", rune(line[0])):
				// top-level comment
			case unicode.IsDigit(rune(line[0])):
				tx, err := parseTransactionLine(line)
				if err != nil {
					issues = append(issues, core.ParseIssue{Path: name, Line: lineNumber, Message: err.Error()})
					continue
				}
				tx.Line = lineNumber
				currentTransaction = tx
			case strings.HasPrefix(line, "include "):
				includes = append(includes, strings.TrimSpace(strings.TrimPrefix(line, "include ")))
			default:
				issues = append(issues, core.ParseIssue{
					Path:    name,
					Line:    lineNumber,
					Message: fmt.Sprintf("unsupported directive %q", strings.Fields(trimmed)[0]),
				})
			}
			continue
		}

		// Otherwise, it should be a posting line
		if currentTransaction == nil {
			issues = append(issues, core.ParseIssue{
				Path:    name,
				Line:    lineNumber,
				Message: "encountered posting before any transaction date",
			})
			continue
		}

		posting, err := parsePostingLine(line)
		if err != nil {
			issues = append(issues, core.ParseIssue{Path: name, Line: lineNumber, Message: err.Error()})
			continue
		}

		currentTransaction.Postings = append(currentTransaction.Postings, *posting)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return core.Journal{}, nil, nil, fmt.Errorf("error reading %s: %w", name, err)
	}

	return journal, includes, issues, nil
}

// parseTransactionLine parses a transaction header line.
// Expected format: DATE [*|!] [(CODE)] DESCRIPTION [; COMMENT]
func parseTransactionLine(line string) (*core.Transaction, error) {
	date, rest, err := parseDate(line)
	if err != nil {
		return nil, err
	}

	state, rest := parseState(rest)
	code, rest := parseCode(rest)
	description, comment := extractComment(rest)

	return &core.Transaction{
		Date:        date,
		State:       state,
		Code:        code,
		Description: description,
		Comment:     comment,
		Postings:    []core.Posting{},
	}, nil
}

// parseDate extracts a date from the beginning of a string.
// Returns the parsed date and the remaining string.
func parseDate(s string) (time.Time, string, error) {
	s = strings.TrimSpace(s)

	// Find the date portion (YYYY-MM-DD or YYYY/MM/DD)
	if len(s) < 10 {
		return time.Time{}, s, fmt.Errorf("line too short to contain a date")
	}

	dateStr := s[:10]
	rest := s[10:]

	formats := []string{"2006-01-02", "2006/01/02"}
	for _, format := range formats {
		if date, err := time.Parse(format, dateStr); err == nil {
			return date, rest, nil
		}
	}

	return time.Time{}, s, fmt.Errorf("unrecognized date format '%s'", dateStr)
}

// parseState checks if the string starts with a cleared (*) or pending (!) marker.
func parseState(s string) (core.State, string) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "*"):
		return core.Cleared, strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "!"):
		return core.Pending, strings.TrimSpace(s[1:])
	}
	return core.Uncleared, s
}

// parseCode extracts an optional "(CODE)" prefix.
func parseCode(s string) (string, string) {
	if !strings.HasPrefix(s, "(") {
		return "", s
	}
	end := strings.Index(s, ")")
	if end == -1 {
		return "", s
	}
	return strings.TrimSpace(s[1:end]), strings.TrimSpace(s[end+1:])
}

// parsePostingLine parses a posting line.
// Expected format: WHITESPACE ACCOUNT [AMOUNT] [; COMMENT]
func parsePostingLine(line string) (*core.Posting, error) {
	s := strings.TrimSpace(line)

	text, comment := extractComment(s)

	account, amountText := splitAccountAndAmount(text)
	if account == "" {
		return nil, fmt.Errorf("posting missing account name")
	}

	posting := &core.Posting{Account: account, Comment: comment}
	if amountText != "" {
		amount, err := ParseAmount(amountText)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", account, err)
		}
		posting.Amount = &amount
	}
	return posting, nil
}

// extractComment separates a line into text and comment parts.
// Returns the text before the comment and the comment itself.
func extractComment(s string) (text, comment string) {
	if idx := strings.Index(s, ";"); idx != -1 {
		text = strings.TrimSpace(s[:idx])
		comment = strings.TrimSpace(s[idx+1:])
		return
	}

	text = strings.TrimSpace(s)
	return
}

// splitAccountAndAmount splits on the first occurrence of either two or more
// spaces or one or more tabs. This allows account names to contain single spaces.
func splitAccountAndAmount(s string) (string, string) {
	s = strings.TrimSpace(s)

	splitIdx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			splitIdx = i
			break
		}
		if s[i] == ' ' && i+1 < len(s) && s[i+1] == ' ' {
			splitIdx = i
			break
		}
	}

	if splitIdx == -1 {
		return s, ""
	}

	return strings.TrimSpace(s[:splitIdx]), strings.TrimSpace(s[splitIdx:])
}
