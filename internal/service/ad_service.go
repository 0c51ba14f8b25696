package service

import (
	"context"
	"course_cert_backend/internal/config"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const adsManifest = "ads/ads.json"

// AdPlacement 一次片头广告展示
type AdPlacement struct {
	ViewID    string   `json:"viewId"`
	Ad        model.Ad `json:"ad"`
	SkipDelay int      `json:"skipDelay"`
}

// AdService 片头广告加载器。加载超过超时时间即放弃，调用方直接播放课程视频。
type AdService struct {
	Source ContentSource

	mu       sync.RWMutex
	settings config.AdsConfig
	rng      *rand.Rand
	rngMu    sync.Mutex
}

func NewAdService(source ContentSource, cfg config.AdsConfig) *AdService {
	s := &AdService{
		Source: source,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.UpdateSettings(cfg)
	return s
}

// UpdateSettings applies reloaded ad configuration.
func (s *AdService) UpdateSettings(cfg config.AdsConfig) {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 10 * time.Second
	}
	if cfg.SkipDelay < 0 {
		cfg.SkipDelay = 0
	}
	s.mu.Lock()
	s.settings = cfg
	s.mu.Unlock()
}

func (s *AdService) Settings() config.AdsConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ActiveAds reads the manifest and keeps only active ads.
func (s *AdService) ActiveAds(ctx context.Context) ([]model.Ad, error) {
	data, err := s.Source.Read(ctx, adsManifest)
	if err != nil {
		return nil, err
	}
	var manifest model.AdsData
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode ads: %w", err)
	}

	active := make([]model.Ad, 0, len(manifest.Ads))
	for _, ad := range manifest.Ads {
		if ad.Active {
			active = append(active, ad)
		}
	}
	return active, nil
}

// PickPreroll selects a random active ad within the load timeout. Any
// failure maps to ErrAdUnavailable so callers can skip straight to content.
func (s *AdService) PickPreroll(ctx context.Context) (*AdPlacement, error) {
	settings := s.Settings()
	if !settings.Enabled {
		return nil, util.ErrAdUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, settings.LoadTimeout)
	defer cancel()

	type loaded struct {
		ads []model.Ad
		err error
	}
	ch := make(chan loaded, 1)
	go func() {
		ads, err := s.ActiveAds(ctx)
		ch <- loaded{ads, err}
	}()

	var ads []model.Ad
	select {
	case <-ctx.Done():
		logger.Log.Warn("Ad load timed out", zap.Duration("timeout", settings.LoadTimeout))
		return nil, fmt.Errorf("%w: %v", util.ErrAdUnavailable, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			logger.Log.Warn("Failed to load ads", zap.Error(res.err))
			return nil, fmt.Errorf("%w: %v", util.ErrAdUnavailable, res.err)
		}
		ads = res.ads
	}
	if len(ads) == 0 {
		return nil, util.ErrAdUnavailable
	}

	s.rngMu.Lock()
	ad := ads[s.rng.Intn(len(ads))]
	s.rngMu.Unlock()

	skip := ad.SkipDelay
	if skip <= 0 {
		skip = settings.SkipDelay
	}
	return &AdPlacement{
		ViewID:    uuid.New().String(),
		Ad:        ad,
		SkipDelay: skip,
	}, nil
}
