package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadStore struct{}

func NewIdempotencyReadStore() *IdempotencyReadStore {
	return &IdempotencyReadStore{}
}

// Get reads through the given dbtx so an in-flight transaction sees its
// own claim. Expiry is judged by the database clock, the same clock the
// insert path reclaims against, so a key that blocked a claim in this
// transaction always reads back. An expired key reads back as not found.
func (s *IdempotencyReadStore) Get(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := dbtx.QueryRow(ctx,
		`SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		 FROM idempotency_keys
		 WHERE key = $1 AND user_id = $2 AND expires_at >= now()`,
		key, userID,
	).Scan(&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &rec.ExpiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}
