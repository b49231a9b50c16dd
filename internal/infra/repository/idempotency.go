package repository

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key for a new attempt. An existing row only blocks the
// claim while it is still unexpired; expired rows are reclaimed in place so a
// retried key behaves like a fresh one.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		 VALUES ($1, $2, $3, $4, 'processing', $5)
		 ON CONFLICT (key) DO UPDATE
		 SET user_id            = EXCLUDED.user_id,
		     endpoint           = EXCLUDED.endpoint,
		     request_hash       = EXCLUDED.request_hash,
		     status             = 'processing',
		     response_body_hash = NULL,
		     result_booking_id  = NULL,
		     expires_at         = EXCLUDED.expires_at,
		     updated_at         = now()
		 WHERE idempotency_keys.expires_at < now()`,
		key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE idempotency_keys
		 SET status = 'completed', response_body_hash = $3, result_booking_id = $4, updated_at = now()
		 WHERE key = $1 AND user_id = $2`,
		key, userID, responseHash, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteExpired is run periodically to keep the table bounded.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, dbtx db.DBTX) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at < now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
