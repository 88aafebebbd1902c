package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"

	"github.com/robfig/cron/v3"
)

// MenuCacheWarmJob keeps the public menu warm in the cache. It replays the
// guest menu query every minute, so after a cache flush or TTL expiry the
// next customer hit is still served from Redis.
type MenuCacheWarmJob struct {
	handler queries.GetMenuQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMenuCacheWarmJob creates the cache warming job.
func NewMenuCacheWarmJob(handler queries.GetMenuQueryHandler, logger *slog.Logger) *MenuCacheWarmJob {
	return &MenuCacheWarmJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "menu_cache_warm_job"),
	}
}

// Start schedules the job to run once a minute.
func (j *MenuCacheWarmJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetMenuQuery(false, account.NewGuestActor())
		if err != nil {
			j.logger.ErrorContext(ctx, "Menu cache warm job failed to build query", "error", err)
			return
		}

		if _, err := j.handler.Handle(ctx, query); err != nil {
			j.logger.ErrorContext(ctx, "Menu cache warm job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu cache warm job started (running every minute)")
	return nil
}

// Stop stops the menu cache warm job.
func (j *MenuCacheWarmJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu cache warm job stopped")
}
