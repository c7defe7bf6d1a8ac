package formatting

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"jxlogin/internal/gamesession"
)

type yamlFormatter struct{}

func (yamlFormatter) Structured() bool { return true }

func (yamlFormatter) WriteAccounts(w io.Writer, session gamesession.Session, accounts []gamesession.Account) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(session, accounts)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
