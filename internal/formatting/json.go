package formatting

import (
	"fmt"
	"io"

	"jxlogin/internal/gamesession"
)

type jsonFormatter struct{}

func (jsonFormatter) Structured() bool { return true }

func (jsonFormatter) WriteAccounts(w io.Writer, session gamesession.Session, accounts []gamesession.Account) error {
	_, err := fmt.Fprintln(w, PrettyJSON(newDocument(session, accounts)))
	return err
}
