package core

// LoadIssue describes a non-fatal problem encountered while building the ledger.
type LoadIssue struct {
	Stage   string
	Path    string
	Line    int
	Message string
}

// LoadSummary describes what ledger construction produced.
type LoadSummary struct {
	Journals     int
	Transactions int
	Postings     int
	Issues       []LoadIssue
}
