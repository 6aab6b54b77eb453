package service

import (
	"context"
	"time"

	"violethacks/internal/core/cache"
	"violethacks/internal/domain"
	"violethacks/internal/repo"
)

const statsCacheKey = "violethacks:site_stats"

type StatsService struct {
	accounts *repo.AccountRepo
	comments *repo.CommentRepo

	cache *cache.Cache // 可为 nil（未配置 redis 时直读库）
	ttl   time.Duration

	// 在线人数是占位估算，不是真实 presence；系数可配
	onlineFactor float64
}

func NewStatsService(accounts *repo.AccountRepo, comments *repo.CommentRepo, c *cache.Cache, ttl time.Duration, onlineFactor float64) *StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if onlineFactor <= 0 {
		onlineFactor = 0.4
	}
	return &StatsService{accounts: accounts, comments: comments, cache: c, ttl: ttl, onlineFactor: onlineFactor}
}

func (s *StatsService) Compute(ctx context.Context) (*domain.SiteStats, error) {
	if s.cache == nil {
		return s.load(ctx)
	}
	return cache.GetOrLoadJSON[domain.SiteStats](s.cache, ctx, statsCacheKey, s.ttl,
		func(ctx context.Context) (*domain.SiteStats, error) { return s.load(ctx) })
}

func (s *StatsService) load(_ context.Context) (*domain.SiteStats, error) {
	members, err := s.accounts.Count()
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.Count()
	if err != nil {
		return nil, err
	}
	latest := ""
	if a, err := s.accounts.Latest(); err != nil {
		return nil, err
	} else if a != nil {
		latest = a.Username
	}
	return &domain.SiteStats{
		OnlineMembers: int64(float64(members)*s.onlineFactor) + 1,
		TotalComments: comments,
		TotalMembers:  members,
		LatestMember:  latest,
	}, nil
}
