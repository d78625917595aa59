package contract

import "context"

// RawResult carries an ad-hoc query result with the column order the
// database returned, so downstream formatting never reshuffles it.
type RawResult struct {
	Columns []string
	Rows    [][]string
}

type RawQueryRepository interface {
	// Select runs an already-validated read query and renders every cell
	// as a string. NULL becomes the empty string.
	Select(ctx context.Context, query string) (*RawResult, error)
}
