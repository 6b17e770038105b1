package statement

import (
	"strings"

	"github.com/unsub-dev/unsub/internal/model"
)

// ParsedStatement holds the raw tabular view of a statement export plus
// the transactions built from it.
type ParsedStatement struct {
	Headers      []string
	Rows         [][]string
	Transactions []model.Transaction
}

// ColumnMap maps semantic roles to column indexes. -1 means the role was
// not found in the header row.
type ColumnMap struct {
	Date        int
	Description int
	Amount      int
	Category    int
}

// Positional fallbacks used when a role cannot be resolved from headers.
// Category has no fallback; it is genuinely optional.
const (
	fallbackColDate   = 0
	fallbackColDesc   = 1
	fallbackColAmount = 2
)

// minRowFields is the minimum field count for a row to contribute a
// transaction.
const minRowFields = 3

// Parse converts raw delimited text into headers, rows and transactions.
// Statements with no data rows yield an empty ParsedStatement, not an
// error; bank exports are inconsistent enough that refusing input outright
// is never the right move.
func Parse(content string) ParsedStatement {
	lines := splitLines(content)
	if len(lines) < 2 {
		return ParsedStatement{}
	}

	headers := splitLine(lines[0])

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitLine(line))
	}

	cols := ResolveColumns(headers)

	return ParsedStatement{
		Headers:      headers,
		Rows:         rows,
		Transactions: buildTransactions(rows, cols),
	}
}

// splitLines trims the whole text and splits on line boundaries,
// accepting both \n and \r\n endings.
func splitLines(content string) []string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitLine splits one line into fields. A comma inside a quoted field
// does not split; a doubled quote inside a quoted field decodes to a
// literal quote. Every field is trimmed of surrounding whitespace.
func splitLine(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}

	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// Role keywords for header matching, checked case-insensitively as
// substrings of each header.
var (
	dateKeywords     = []string{"date", "posted", "transaction date"}
	descKeywords     = []string{"description", "merchant", "name", "payee"}
	amountKeywords   = []string{"amount", "debit", "charge", "total"}
	categoryKeywords = []string{"category", "type"}
)

// ResolveColumns maps header names to semantic roles using keyword
// heuristics.
func ResolveColumns(headers []string) ColumnMap {
	return ColumnMap{
		Date:        findColumn(headers, dateKeywords),
		Description: findColumn(headers, descKeywords),
		Amount:      findColumn(headers, amountKeywords),
		Category:    findColumn(headers, categoryKeywords),
	}
}

// findColumn returns the index of the first header containing any of the
// keywords, or -1.
func findColumn(headers []string, keywords []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

// buildTransactions converts rows into transactions. A row qualifies only
// if it has enough fields, a non-empty description and a parsable amount;
// anything else is dropped silently.
func buildTransactions(rows [][]string, cols ColumnMap) []model.Transaction {
	var txns []model.Transaction
	for _, row := range rows {
		if len(row) < minRowFields {
			continue
		}

		desc := fieldAt(row, cols.Description, fallbackColDesc)
		if desc == "" {
			continue
		}

		amount, ok := NormalizeAmount(fieldAt(row, cols.Amount, fallbackColAmount))
		if !ok {
			continue
		}

		txn := model.Transaction{
			Date:        fieldAt(row, cols.Date, fallbackColDate),
			Description: desc,
			Amount:      amount,
		}
		if cols.Category >= 0 && cols.Category < len(row) {
			txn.Category = row[cols.Category]
		}
		txns = append(txns, txn)
	}
	return txns
}

// fieldAt returns the value at idx, using the positional fallback when
// the role was unresolved or out of range for this row.
func fieldAt(row []string, idx, fallback int) string {
	if idx < 0 || idx >= len(row) {
		idx = fallback
	}
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
