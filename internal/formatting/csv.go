package formatting

import (
	"bufio"
	"fmt"
	"io"

	"jxlogin/internal/gamesession"
)

type csvFormatter struct{}

func (csvFormatter) Structured() bool { return false }

// WriteAccounts writes the header and one line per account. Values are
// written as-is, so a display name containing ", " is not escaped.
func (csvFormatter) WriteAccounts(w io.Writer, session gamesession.Session, accounts []gamesession.Account) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, CSVHeader)
	for _, a := range accounts {
		fmt.Fprintf(bw, "%s, %s, %s\n", session, a.DisplayName, a.AccountID)
	}
	return bw.Flush()
}
