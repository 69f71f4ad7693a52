package contract

import "context"

// WatermarkStore persists the per-user sync watermark: the timestamp below
// which records are assumed already synchronized. A missing watermark reads
// as zero, which makes the first sync pull everything.
type WatermarkStore interface {
	Get(ctx context.Context, userID string) (int64, error)
	Save(ctx context.Context, userID string, timestamp int64) error
}
