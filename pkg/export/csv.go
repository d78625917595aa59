package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// CSV renders the table as UTF-8 comma-separated values: header row first,
// then one line per record. An empty table yields header only.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds the download name the original dashboard used:
// <table>_<yyyymmdd>.csv
func Filename(table string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", table, now.Format("20060102"))
}
