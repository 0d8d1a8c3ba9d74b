package ports

import "context"

// SequenceCounter allocates sequence numbers for temperature log entries.
// The counter is process-wide, starts at 1, is incremented exactly once per
// successful log append, and is never reset. Allocation must happen inside the
// same transaction as the append so that an aborted operation does not burn a
// committed state change (gaps from rolled-back transactions are acceptable;
// duplicates are not).
type SequenceCounter interface {
	// Next returns the next sequence number and advances the counter.
	Next(ctx context.Context) (uint64, error)
}
