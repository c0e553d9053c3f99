package handlers

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/internal/services"
)

// Cache keys and TTL shared by loaders and the handlers that read the
// warmed entries.
const (
	cacheKeyDashboardStats = "cache:dashboard:stats"
	cacheKeyFunnel         = "cache:analytics:funnel"
	cacheTTL               = 5 * time.Minute
)

// BuildLoaderRegistry wires the per-section data loaders. Loaders run
// detached from the request: they warm the Redis cache and bump the section
// view counter, and report their own failures to the log. The router never
// waits on them.
func BuildLoaderRegistry(db *gorm.DB, cache *services.RedisCache) *nav.LoaderRegistry {
	registry := nav.NewLoaderRegistry()
	if db == nil || cache == nil {
		return registry
	}

	warm := func(fill func(ctx context.Context) error) nav.LoaderFunc {
		return func(_ context.Context, id nav.SectionID) {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if _, err := cache.Increment(ctx, "views:"+string(id)); err != nil {
					log.Printf("loader %s: view counter: %v", id, err)
				}
				if err := fill(ctx); err != nil {
					log.Printf("loader %s: cache warm failed: %v", id, err)
				}
			}()
		}
	}

	registry.Register(nav.SectionDashboard, warm(func(ctx context.Context) error {
		stats, err := collectDashboardStats(db)
		if err != nil {
			return err
		}
		return cache.Set(ctx, cacheKeyDashboardStats, stats, cacheTTL)
	}))

	registry.Register(nav.SectionAnalytics, warm(func(ctx context.Context) error {
		funnel, err := collectFunnel(db)
		if err != nil {
			return err
		}
		return cache.Set(ctx, cacheKeyFunnel, funnel, cacheTTL)
	}))

	registry.Register(nav.SectionCandidates, warm(func(ctx context.Context) error {
		var count int64
		return db.Model(&models.Candidate{}).Count(&count).Error
	}))

	registry.Register(nav.SectionJobPostings, warm(func(ctx context.Context) error {
		var count int64
		return db.Model(&models.JobPosting{}).
			Where("status = ?", models.JobPostingStatusOpen).Count(&count).Error
	}))

	registry.Register(nav.SectionUserManagement, warm(func(ctx context.Context) error {
		var count int64
		return db.Model(&models.User{}).Count(&count).Error
	}))

	return registry
}
