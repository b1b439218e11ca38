package productionline

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
)

// CacheConfig sizes the per-line summary cache. A Size <= 0 disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default summary cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultSummaryCacheSize, TTL: DefaultSummaryCacheTTL}
}

// summaryCache maps line slugs to their last computed summary
type summaryCache struct {
	lru *expirable.LRU[string, production.LineSummary]
}

func newSummaryCache(cfg CacheConfig) *summaryCache {
	if cfg.Size <= 0 {
		return &summaryCache{}
	}
	return &summaryCache{lru: expirable.NewLRU[string, production.LineSummary](cfg.Size, nil, cfg.TTL)}
}

func (c *summaryCache) get(slug string) (production.LineSummary, bool) {
	if c.lru == nil {
		return production.LineSummary{}, false
	}
	s, ok := c.lru.Get(slug)
	if ok {
		metrics.SummaryCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return cloneSummary(s), true
	}
	metrics.SummaryCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	return production.LineSummary{}, false
}

func (c *summaryCache) put(slug string, s production.LineSummary) {
	if c.lru != nil {
		c.lru.Add(slug, cloneSummary(s))
	}
}

func (c *summaryCache) invalidate(slug string) {
	if c.lru != nil {
		c.lru.Remove(slug)
	}
}

func (c *summaryCache) purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// cloneSummary copies the slices so cached entries never alias caller data
func cloneSummary(s production.LineSummary) production.LineSummary {
	out := s
	out.Items = slices.Clone(s.Items)
	out.Power = slices.Clone(s.Power)
	return out
}
