package memstore

import (
	"context"
	"sync"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

// SequenceGenerator allocates per-scope document sequence numbers.
// One counter per (docType, store, yearMonth), incremented under a
// single mutex so concurrent callers always draw distinct values.
type SequenceGenerator struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewSequenceGenerator creates an empty generator
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: make(map[string]int64)}
}

// Next returns the next sequence value for the scope, starting at 1
func (g *SequenceGenerator) Next(_ context.Context, docType document.DocType, storeCode, yearMonth string) (int64, error) {
	scope := document.SequenceScope(docType, storeCode, yearMonth)

	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.counters[scope] + 1
	if next > docType.MaxSequence() {
		return 0, shared.NewSequenceCollisionError(scope)
	}
	g.counters[scope] = next
	return next, nil
}
