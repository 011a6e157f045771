package scheduler

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
)

// SnapshotJobName names the periodic content snapshot
const SnapshotJobName = "content-snapshot"

// SnapshotRecorder records snapshot outcomes
type SnapshotRecorder interface {
	RecordSnapshot(success bool)
}

// NewSnapshotJob writes a JSON snapshot of every content document on schedule.
// recorder may be nil.
func NewSnapshotJob(schedule string, snapshots service.SnapshotService, recorder SnapshotRecorder, logger *zap.Logger) Job {
	return Job{
		Name:     SnapshotJobName,
		Schedule: schedule,
		Run: func(ctx context.Context) error {
			result, err := snapshots.Snapshot(ctx)
			if recorder != nil {
				recorder.RecordSnapshot(err == nil)
			}
			if err != nil {
				return err
			}
			logger.Info("Content snapshot written",
				zap.String("path", result.Path),
				zap.Int("documents", result.Documents),
			)
			return nil
		},
	}
}
