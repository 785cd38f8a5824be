package document

import "context"

// SequenceGenerator allocates document sequence numbers. Each
// (docType, storeCode, yearMonth) triple is an independent counter
// starting at 1. Implementations must be safe for concurrent use and
// must never hand out the same value twice for one scope; when a
// counter would exceed the doc type's width capacity the generator
// returns a SEQUENCE_COLLISION error.
type SequenceGenerator interface {
	Next(ctx context.Context, docType DocType, storeCode, yearMonth string) (int64, error)
}
