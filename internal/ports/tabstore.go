package ports

import "context"

// TabStore is the tabular read/write surface of the spreadsheet.
// ReplaceTab is full-replace: the worksheet is created if missing,
// cleared, then written header-first in one batch. Consistency across
// concurrent invocations is the caller's responsibility; the store is
// remote and shared, last writer wins.
type TabStore interface {
	ReplaceTab(ctx context.Context, tab string, header []string, rows [][]string) error
	ReadTab(ctx context.Context, tab string) ([][]string, error)
	URL() string
}
