package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-analytics/internal/events"
	"github.com/spec-kit/ticket-analytics/internal/service"
)

// StartCacheWorker subscribes cache invalidation to import lifecycle events
// so the dashboard never serves stale aggregates after an import.
func StartCacheWorker(dispatcher events.Dispatcher, analyticsService *service.AnalyticsService, logger *zap.Logger) {
	if dispatcher == nil || analyticsService == nil {
		return
	}

	invalidate := func(ctx context.Context, event events.Event) error {
		if err := analyticsService.InvalidateCache(ctx); err != nil {
			logger.Warn("cache invalidation failed",
				zap.String("import_id", event.ImportID),
				zap.Error(err))
			return err
		}
		return nil
	}

	dispatcher.Subscribe(events.EventImportCompleted, invalidate)
	dispatcher.Subscribe(events.EventImportFailed, invalidate)
	dispatcher.Subscribe(events.EventImportDeleted, invalidate)
}
