package formatting

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"jxlogin/internal/gamesession"
)

var testAccounts = []gamesession.Account{
	{DisplayName: "Zezima", AccountID: "111"},
	{DisplayName: "Woox", AccountID: "222"},
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"csv", "table", "json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(name), f)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestNew_DefaultsToCSV(t *testing.T) {
	assert.IsType(t, csvFormatter{}, New(Options{}))
	assert.IsType(t, csvFormatter{}, New(Options{Format: "bogus"}))
	assert.IsType(t, &tableFormatter{}, New(Options{Format: FormatTable}))
	assert.IsType(t, jsonFormatter{}, New(Options{Format: FormatJSON}))
	assert.IsType(t, yamlFormatter{}, New(Options{Format: FormatYAML}))
}

func TestStructured(t *testing.T) {
	assert.False(t, New(Options{Format: FormatCSV}).Structured())
	assert.False(t, New(Options{Format: FormatTable}).Structured())
	assert.True(t, New(Options{Format: FormatJSON}).Structured())
	assert.True(t, New(Options{Format: FormatYAML}).Structured())
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatCSV}).WriteAccounts(&buf, "sess-1", testAccounts))

	assert.Equal(t,
		"JX_SESSION_ID, JX_CHARACTER_NAME, JX_ACCOUNT_ID\n"+
			"sess-1, Zezima, 111\n"+
			"sess-1, Woox, 222\n",
		buf.String())
}

func TestCSV_NoAccounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{}).WriteAccounts(&buf, "sess-1", nil))
	assert.Equal(t, CSVHeader+"\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatTable}).WriteAccounts(&buf, "sess-1", testAccounts))

	out := buf.String()
	assert.Contains(t, out, "SESSION ID")
	assert.Contains(t, out, "CHARACTER")
	assert.Contains(t, out, "Zezima")
	assert.Contains(t, out, "222")
	assert.NotContains(t, out, "\x1b[", "no color codes unless enabled")
}

func TestTable_NoAccounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatTable}).WriteAccounts(&buf, "sess-1", nil))
	assert.Contains(t, buf.String(), "No characters found")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatJSON}).WriteAccounts(&buf, "sess-1", testAccounts))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "sess-1", doc.SessionID)
	require.Len(t, doc.Accounts, 2)
	assert.Equal(t, "Woox", doc.Accounts[1].DisplayName)
}

func TestJSON_EmptyAccountsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatJSON}).WriteAccounts(&buf, "s", nil))
	assert.Contains(t, buf.String(), `"accounts": []`)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Format: FormatYAML}).WriteAccounts(&buf, "sess-1", testAccounts))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "sess-1", doc.SessionID)
	assert.Equal(t, "111", doc.Accounts[0].AccountID)
	assert.Contains(t, buf.String(), "sessionId: sess-1")
}
