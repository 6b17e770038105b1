package statement

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Statement(t *testing.T) {
	data, err := os.ReadFile("../../testdata/statement.csv")
	require.NoError(t, err)

	parsed := Parse(string(data))
	assert.Equal(t, []string{"Date", "Description", "Amount", "Category"}, parsed.Headers)
	assert.Len(t, parsed.Rows, 9)

	// Short row, empty description and unparsable amount are all dropped.
	require.Len(t, parsed.Transactions, 6)

	first := parsed.Transactions[0]
	assert.Equal(t, "2024-01-05", first.Date)
	assert.Equal(t, "NETFLIX.COM", first.Description)
	assert.Equal(t, "15.99", first.Amount.StringFixed(2))
	assert.Equal(t, "Entertainment", first.Category)
}

func TestParse_QuotedDelimiter(t *testing.T) {
	csv := "Date,Description,Amount\n2024-01-05,\"Smith, John\",12.00\n"
	parsed := Parse(csv)

	require.Len(t, parsed.Rows, 1)
	assert.Equal(t, []string{"2024-01-05", "Smith, John", "12.00"}, parsed.Rows[0])

	require.Len(t, parsed.Transactions, 1)
	assert.Equal(t, "Smith, John", parsed.Transactions[0].Description)
}

func TestParse_EscapedQuotes(t *testing.T) {
	csv := "Date,Description,Amount\n2024-01-05,\"ACME \"\"PRO\"\" LLC\",12.00\n"
	parsed := Parse(csv)

	require.Len(t, parsed.Transactions, 1)
	assert.Equal(t, `ACME "PRO" LLC`, parsed.Transactions[0].Description)
}

func TestParse_EmptyInput(t *testing.T) {
	parsed := Parse("")
	assert.Empty(t, parsed.Headers)
	assert.Empty(t, parsed.Rows)
	assert.Empty(t, parsed.Transactions)
}

func TestParse_HeaderOnly(t *testing.T) {
	parsed := Parse("Date,Description,Amount\n")
	assert.Empty(t, parsed.Headers)
	assert.Empty(t, parsed.Transactions)
}

func TestParse_CRLF(t *testing.T) {
	csv := "Date,Description,Amount\r\n2024-01-05,NETFLIX.COM,15.99\r\n"
	parsed := Parse(csv)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, parsed.Headers)
	require.Len(t, parsed.Transactions, 1)
	assert.Equal(t, "NETFLIX.COM", parsed.Transactions[0].Description)
}

func TestParse_PositionalFallback(t *testing.T) {
	// No header keyword matches; builder falls back to columns 0, 1, 2.
	csv := "A,B,C\n2024-01-05,NETFLIX.COM,15.99\n"
	parsed := Parse(csv)

	require.Len(t, parsed.Transactions, 1)
	txn := parsed.Transactions[0]
	assert.Equal(t, "2024-01-05", txn.Date)
	assert.Equal(t, "NETFLIX.COM", txn.Description)
	assert.Equal(t, "15.99", txn.Amount.StringFixed(2))
	assert.Empty(t, txn.Category)
}

func TestParse_ShuffledColumns(t *testing.T) {
	csv := "Amount,Posted Date,Payee\n15.99,2024-01-05,NETFLIX.COM\n"
	parsed := Parse(csv)

	require.Len(t, parsed.Transactions, 1)
	txn := parsed.Transactions[0]
	assert.Equal(t, "2024-01-05", txn.Date)
	assert.Equal(t, "NETFLIX.COM", txn.Description)
	assert.Equal(t, "15.99", txn.Amount.StringFixed(2))
}

func TestParse_FieldsTrimmed(t *testing.T) {
	csv := "Date,Description,Amount\n 2024-01-05 ,  NETFLIX.COM , 15.99 \n"
	parsed := Parse(csv)

	require.Len(t, parsed.Transactions, 1)
	assert.Equal(t, "2024-01-05", parsed.Transactions[0].Date)
	assert.Equal(t, "NETFLIX.COM", parsed.Transactions[0].Description)
}

func TestResolveColumns(t *testing.T) {
	cols := ResolveColumns([]string{"Transaction Date", "Merchant Name", "Debit", "Type"})
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Description)
	assert.Equal(t, 2, cols.Amount)
	assert.Equal(t, 3, cols.Category)
}

func TestResolveColumns_CaseInsensitive(t *testing.T) {
	cols := ResolveColumns([]string{"DATE", "DESCRIPTION", "AMOUNT"})
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Description)
	assert.Equal(t, 2, cols.Amount)
	assert.Equal(t, -1, cols.Category)
}

func TestResolveColumns_NoMatches(t *testing.T) {
	cols := ResolveColumns([]string{"A", "B", "C"})
	assert.Equal(t, -1, cols.Date)
	assert.Equal(t, -1, cols.Description)
	assert.Equal(t, -1, cols.Amount)
	assert.Equal(t, -1, cols.Category)
}
