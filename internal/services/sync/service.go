package sync

import (
	"context"
	"log"
	"time"

	"paylink_sync/internal/ports"
)

// Service runs the full sync pipeline: fetch every payment link,
// normalize each into the fixed row schema, full-replace the primary
// worksheet. Any fetch or write error aborts the run; nothing partial
// is committed.
type Service struct {
	Source ports.LinkSource
	Store  ports.TabStore
	Tab    string
}

type Result struct {
	Fetched  int
	Rows     int
	SheetURL string
}

func NewService(source ports.LinkSource, store ports.TabStore, tab string) *Service {
	return &Service{Source: source, Store: store, Tab: tab}
}

func (s *Service) Run(ctx context.Context, r ports.FetchRange) (Result, error) {
	t0 := time.Now()
	log.Printf("[SYNC][START] tab=%q", s.Tab)

	links, err := s.Source.FetchAll(ctx, r)
	if err != nil {
		log.Printf("[SYNC][ERR] fetch: %v", err)
		return Result{}, err
	}
	if len(links) == 0 {
		log.Printf("[SYNC][WARN] no payment links found — writing header only")
	}

	rows := make([][]string, 0, len(links))
	statuses := map[string]int{}
	for _, link := range links {
		rows = append(rows, Normalize(link))
		status := link.Status
		if status == "" {
			status = "unknown"
		}
		statuses[status]++
	}
	for status, n := range statuses {
		log.Printf("[SYNC] status %s: %d", status, n)
	}

	if err := s.Store.ReplaceTab(ctx, s.Tab, Header(), rows); err != nil {
		log.Printf("[SYNC][ERR] sheet write: %v", err)
		return Result{}, err
	}

	log.Printf("[SYNC][DONE] links=%d rows=%d duration=%s", len(links), len(rows), time.Since(t0))
	return Result{Fetched: len(links), Rows: len(rows), SheetURL: s.Store.URL()}, nil
}
