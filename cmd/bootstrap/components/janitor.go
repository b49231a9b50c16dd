package components

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/infra/db"
	"staybook/internal/infra/repository"

	"go.uber.org/fx"
)

const idempotencySweepInterval = 1 * time.Hour

var JanitorModule = fx.Module("janitor",
	fx.Invoke(startIdempotencyJanitor),
)

// startIdempotencyJanitor periodically deletes expired idempotency keys so
// the table stays bounded. Reuse of an expired key is already handled at
// insert time; the janitor only reclaims storage.
func startIdempotencyJanitor(lc fx.Lifecycle, dbtx db.DBTX, logger *slog.Logger) {
	repo := repository.NewIdempotencyRepository()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						deleted, err := repo.DeleteExpired(ctx, dbtx)
						if err != nil {
							logger.Error("期限切れの冪等キーの削除に失敗しました", "error", err)
							continue
						}
						if deleted > 0 {
							logger.Info("期限切れの冪等キーを削除しました", "count", deleted)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
