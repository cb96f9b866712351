package core

import "fmt"

// ParseIssue captures a non-fatal problem encountered while reading a ledger file.
type ParseIssue struct {
	Path    string
	Line    int
	Message string
}

func (i ParseIssue) String() string {
	return fmt.Sprintf("%s:%d: %s", i.Path, i.Line, i.Message)
}

// ParseResult contains the parsed journals along with any issues that occurred.
// Journals holds the parsed file first, followed by its includes in the order
// they were encountered.
type ParseResult struct {
	Journals []Journal
	Issues   []ParseIssue
}
