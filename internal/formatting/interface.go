// Package formatting renders the accounts of a game session for the CLI.
//
// The default CSV format matches what launcher environment files expect: a
// header line followed by one "session, name, id" line per account. Table,
// JSON and YAML formats are available for people and scripts.
package formatting

import (
	"fmt"
	"io"

	"jxlogin/internal/gamesession"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatCSV   OutputFormat = "csv"   // Comma-separated lines with a header
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// CSVHeader is the first line of the CSV output.
const CSVHeader = "JX_SESSION_ID, JX_CHARACTER_NAME, JX_ACCOUNT_ID"

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output (table only)
}

// Formatter writes a session and its accounts to w.
type Formatter interface {
	WriteAccounts(w io.Writer, session gamesession.Session, accounts []gamesession.Account) error
	// Structured reports whether the output is meant for machines, in which
	// case callers should not mix progress messages into the same stream.
	Structured() bool
}

// ParseFormat maps a user supplied name to an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(name); f {
	case FormatCSV, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// New creates the formatter for options.Format, defaulting to CSV.
func New(options Options) Formatter {
	switch options.Format {
	case FormatTable:
		return &tableFormatter{color: options.Color}
	case FormatJSON:
		return jsonFormatter{}
	case FormatYAML:
		return yamlFormatter{}
	case FormatCSV:
		fallthrough
	default:
		return csvFormatter{}
	}
}

// document is the structured form shared by the JSON and YAML formatters.
type document struct {
	SessionID string          `json:"sessionId" yaml:"sessionId"`
	Accounts  []accountRecord `json:"accounts" yaml:"accounts"`
}

type accountRecord struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
	AccountID   string `json:"accountId" yaml:"accountId"`
}

func newDocument(session gamesession.Session, accounts []gamesession.Account) document {
	doc := document{SessionID: string(session), Accounts: make([]accountRecord, 0, len(accounts))}
	for _, a := range accounts {
		doc.Accounts = append(doc.Accounts, accountRecord{DisplayName: a.DisplayName, AccountID: a.AccountID})
	}
	return doc
}
