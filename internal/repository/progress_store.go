package repository

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/pkg/logger"
	"course_cert_backend/pkg/monitoring"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const DefaultStorageKey = "course_progress"

// ProgressStore 进度文档的唯一读写者。读写失败只记录日志，不向调用方抛出：
// 进度追踪出错绝不能影响播放。
type ProgressStore struct {
	Substrate Substrate
	KeyPrefix string
	Now       func() time.Time
}

func NewProgressStore(substrate Substrate, keyPrefix string) *ProgressStore {
	if keyPrefix == "" {
		keyPrefix = DefaultStorageKey
	}
	return &ProgressStore{
		Substrate: substrate,
		KeyPrefix: keyPrefix,
		Now:       time.Now,
	}
}

func (s *ProgressStore) key(learnerID string) string {
	return s.KeyPrefix + ":" + learnerID
}

// Load returns the learner's progress document. Missing or corrupt data
// yields an empty, valid document.
func (s *ProgressStore) Load(ctx context.Context, learnerID string) *model.UserProgress {
	progress, _ := s.LoadForUpdate(ctx, learnerID)
	return progress
}

// LoadForUpdate is Load for read-modify-write callers. ok is false when the
// substrate could not be read; the returned empty document must not be saved
// over the stored one. Corrupt data reports ok=true so the next write repairs it.
func (s *ProgressStore) LoadForUpdate(ctx context.Context, learnerID string) (*model.UserProgress, bool) {
	key := s.key(learnerID)

	raw, found, err := s.Substrate.Get(ctx, key)
	if err != nil {
		monitoring.StorageFaults.WithLabelValues("load").Inc()
		logger.Log.Warn("Failed to load progress", zap.String("key", key), zap.Error(err))
		return s.empty(), false
	}
	if !found || raw == "" {
		return s.empty(), true
	}

	var progress model.UserProgress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		monitoring.StorageFaults.WithLabelValues("decode").Inc()
		logger.Log.Warn("Corrupt progress document, starting from empty", zap.String("key", key), zap.Error(err))
		return s.empty(), true
	}

	progress.Normalize()
	return &progress, true
}

// Save stamps LastUpdated and writes the full document back.
func (s *ProgressStore) Save(ctx context.Context, learnerID string, progress *model.UserProgress) {
	if progress == nil {
		return
	}
	key := s.key(learnerID)

	progress.LastUpdated = s.Now().UTC()
	data, err := json.Marshal(progress)
	if err != nil {
		monitoring.StorageFaults.WithLabelValues("encode").Inc()
		logger.Log.Error("Failed to encode progress", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.Substrate.Set(ctx, key, string(data)); err != nil {
		monitoring.StorageFaults.WithLabelValues("save").Inc()
		logger.Log.Error("Failed to save progress", zap.String("key", key), zap.Error(err))
	}
}

func (s *ProgressStore) empty() *model.UserProgress {
	p := model.NewUserProgress()
	p.LastUpdated = s.Now().UTC()
	return p
}
