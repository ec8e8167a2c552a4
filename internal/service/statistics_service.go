package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/persistence"
)

const statsCacheKey = "panel:stats:basic"

// StatisticsService serves the dashboard counters, fronted by a short-lived
// Redis cache so the landing page does not hammer the backend.
type StatisticsService struct {
	api    *gateway.Client
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatisticsService builds the service. A nil redis disables caching.
func NewStatisticsService(api *gateway.Client, redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *StatisticsService {
	return &StatisticsService{api: api, redis: redis, ttl: ttl, logger: logger}
}

// Dashboard returns the basic counters, from cache when fresh.
func (s *StatisticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if cached, ok := s.redis.GetString(ctx, statsCacheKey); ok {
		var stats domain.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		s.logger.Warn("dropping undecodable stats cache entry")
	}

	stats, err := gateway.Do[domain.DashboardStats](ctx, s.api, http.MethodGet, "/statics/basic", nil, nil)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(stats); err == nil {
		s.redis.SetString(ctx, statsCacheKey, string(encoded), s.ttl)
	}
	return &stats, nil
}
