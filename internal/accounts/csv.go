package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/tappio/internal/model"
)

const (
	numFields = 3
	colLevel  = 0
	colNumber = 1
	colName   = 2
)

type csvRow struct {
	level int
	acct  model.Account
}

// ReadAccounts reads account trees from CSV, one row per node in depth-first
// order. The level column gives the node's depth; top-level trees are level 0.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]csvRow, 0, len(records)-1)
	prev := -1
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if row.level > prev+1 {
			return nil, fmt.Errorf("row %d: level %d follows level %d", i+2, row.level, prev)
		}
		prev = row.level
		rows = append(rows, row)
	}

	pos := 0
	return buildTree(rows, &pos, 0), nil
}

func buildTree(rows []csvRow, pos *int, level int) []model.Account {
	var out []model.Account
	for *pos < len(rows) && rows[*pos].level == level {
		acct := rows[*pos].acct
		*pos++
		acct.Subaccounts = buildTree(rows, pos, level+1)
		out = append(out, acct)
	}
	return out
}

// WriteAccounts writes account trees as CSV.
func WriteAccounts(w io.Writer, tree []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"level", "number", "name"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var werr error
	line := 1
	for i := range tree {
		tree[i].Walk(func(acct *model.Account, depth int) {
			line++
			if werr != nil {
				return
			}
			if err := cw.Write(marshalRow(acct, depth)); err != nil {
				werr = fmt.Errorf("writing row %d: %w", line, err)
			}
		})
	}
	if werr != nil {
		return werr
	}

	cw.Flush()
	return cw.Error()
}

func marshalRow(acct *model.Account, depth int) []string {
	row := make([]string, numFields)
	row[colLevel] = strconv.Itoa(depth)
	if acct.Number != nil {
		row[colNumber] = strconv.Itoa(*acct.Number)
	}
	row[colName] = acct.Name
	return row
}

func unmarshalRow(record []string) (csvRow, error) {
	level, err := strconv.Atoi(record[colLevel])
	if err != nil || level < 0 {
		return csvRow{}, fmt.Errorf("parsing level %q: not a non-negative integer", record[colLevel])
	}

	acct := model.Account{Name: record[colName]}
	if record[colNumber] != "" {
		n, err := strconv.Atoi(record[colNumber])
		if err != nil {
			return csvRow{}, fmt.Errorf("parsing number %q: %w", record[colNumber], err)
		}
		if n < 0 {
			return csvRow{}, fmt.Errorf("parsing number %q: negative account number", record[colNumber])
		}
		acct.Number = model.Num(n)
	}
	return csvRow{level: level, acct: acct}, nil
}
