package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

const (
	snapshotPrefix     = "content-"
	snapshotSuffix     = ".json"
	snapshotTimeLayout = "20060102T150405.000Z"
	// name collisions within one millisecond get _001, _002, ...
	maxSnapshotSeq = 999
)

// snapshotService implements service.SnapshotService
type snapshotService struct {
	content service.ContentService
	cfg     config.SnapshotConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewSnapshotService creates a new SnapshotService instance
func NewSnapshotService(contentService service.ContentService, cfg config.SnapshotConfig, logger *zap.Logger) service.SnapshotService {
	return &snapshotService{content: contentService, cfg: cfg, logger: logger, now: time.Now}
}

// Snapshot writes every document, stored or default, to a timestamped
// file and prunes all but the newest cfg.Retain files.
func (s *snapshotService) Snapshot(ctx context.Context) (*service.SnapshotResult, error) {
	if !s.cfg.Enabled || s.cfg.Directory == "" {
		return nil, service.ErrSnapshotDisabled
	}

	docs, err := s.content.List(ctx)
	if err != nil {
		return nil, err
	}

	takenAt := s.now().UTC()
	snap := service.Snapshot{TakenAt: takenAt, Documents: make(map[string]service.SnapshotDocument, len(docs))}
	for _, doc := range docs {
		snap.Documents[doc.Domain] = service.SnapshotDocument{Version: doc.Version, Data: doc.Data}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if err := os.MkdirAll(s.cfg.Directory, 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}

	path, err := s.reservePath(takenAt)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(path)
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}

	s.logger.Info("content snapshot written", zap.String("path", path), zap.Int("documents", len(docs)))
	if err := s.prune(); err != nil {
		s.logger.Warn("pruning snapshots failed", zap.Error(err))
	}
	return &service.SnapshotResult{Path: path, Documents: len(docs), TakenAt: takenAt}, nil
}

// reservePath creates an empty file under a name no earlier snapshot uses.
// Suffixed names sort after the bare one, so lexical order stays
// chronological for the pruner.
func (s *snapshotService) reservePath(takenAt time.Time) (string, error) {
	stem := snapshotPrefix + takenAt.Format(snapshotTimeLayout)
	for seq := 0; seq <= maxSnapshotSeq; seq++ {
		name := stem + snapshotSuffix
		if seq > 0 {
			name = fmt.Sprintf("%s_%03d%s", stem, seq, snapshotSuffix)
		}
		path := filepath.Join(s.cfg.Directory, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, f.Close()
	}
	return "", fmt.Errorf("no free snapshot name for %s", stem)
}

func (s *snapshotService) prune() error {
	if s.cfg.Retain <= 0 {
		return nil
	}
	entries, err := os.ReadDir(s.cfg.Directory)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix) {
			names = append(names, name)
		}
	}
	if len(names) <= s.cfg.Retain {
		return nil
	}
	// Timestamps sort lexically
	sort.Strings(names)
	for _, name := range names[:len(names)-s.cfg.Retain] {
		if err := os.Remove(filepath.Join(s.cfg.Directory, name)); err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}
