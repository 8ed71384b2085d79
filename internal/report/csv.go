package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"spendwise/internal/model"
	"spendwise/internal/store"
)

// Header is the CSV header for exported transactions.
const Header = "id,kind,date,category,amount,note"

// WriteTransactions writes transactions as CSV, header included.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txs {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			string(t.Kind),
			t.Date.Format(model.DateLayout),
			t.Category,
			t.Amount.StringFixed(2),
			t.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ExportCSV writes the matching transactions to w and reports how many
// rows it wrote.
func (r *Reporter) ExportCSV(w io.Writer, f store.TransactionFilter) (int, error) {
	txs, err := r.store.ListTransactions(f)
	if err != nil {
		return 0, err
	}
	if err := WriteTransactions(w, txs); err != nil {
		return 0, err
	}
	return len(txs), nil
}
