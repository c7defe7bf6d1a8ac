package formatting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"jxlogin/internal/gamesession"
)

type tableFormatter struct {
	color bool
}

func (f *tableFormatter) Structured() bool { return false }

func (f *tableFormatter) WriteAccounts(w io.Writer, session gamesession.Session, accounts []gamesession.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n", f.paint(text.FgYellow, "📋"), f.paint(text.FgYellow, "No characters found"))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		f.paint(text.FgHiCyan, "#"),
		f.paint(text.FgHiCyan, "SESSION ID"),
		f.paint(text.FgHiCyan, "CHARACTER"),
		f.paint(text.FgHiCyan, "ACCOUNT ID"),
	})
	for i, a := range accounts {
		t.AppendRow(table.Row{i + 1, string(session), f.paint(text.FgHiWhite, a.DisplayName), a.AccountID})
	}
	t.Render()
	return nil
}

func (f *tableFormatter) paint(color text.Color, s string) string {
	if !f.color {
		return s
	}
	return color.Sprint(s)
}
