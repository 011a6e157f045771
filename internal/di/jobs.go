package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/jobs/scheduler"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
)

// JobsModule provides the cron scheduler and its recurring jobs
var JobsModule = fx.Module("jobs",
	fx.Provide(provideScheduler),
	fx.Invoke(
		registerScheduledJobs,
		startScheduler,
	),
)

// provideScheduler creates the scheduler. With Redis the execution windows
// are shared so several instances run each job once.
func provideScheduler(conn *RedisConnection, logger *zap.Logger) *scheduler.Scheduler {
	var locker scheduler.Locker
	if conn.Client != nil {
		locker = scheduler.NewRedisLocker(conn.Client)
	}
	return scheduler.NewScheduler(locker, logger)
}

func registerScheduledJobs(
	sched *scheduler.Scheduler,
	cfg *config.SnapshotConfig,
	snapshots service.SnapshotService,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) error {
	if !cfg.Enabled {
		logger.Info("Content snapshots disabled")
		return nil
	}
	return sched.RegisterJob(scheduler.NewSnapshotJob(cfg.Schedule, snapshots, metrics, logger))
}

func startScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return sched.Start(context.Background())
		},
		OnStop: func(ctx context.Context) error {
			return sched.Stop(ctx)
		},
	})
}
