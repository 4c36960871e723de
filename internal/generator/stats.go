package generator

import (
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

// Tracker accumulates generation counters for the stats endpoint.
type Tracker struct {
	mu           sync.Mutex
	startedAt    time.Time
	total        int64
	aiEnhanced   int64
	fallback     int64
	aiFailures   int64
	cacheHits    int64
	cacheMisses  int64
	layouts      map[string]int64
	styles       map[string]int64
	totalSeconds float64
	lastSeconds  float64
}

func NewTracker() *Tracker {
	return &Tracker{
		startedAt: time.Now(),
		layouts:   make(map[string]int64),
		styles:    make(map[string]int64),
	}
}

type StatsSnapshot struct {
	TotalGenerated        int64   `json:"total_wireframes_generated"`
	AIEnhancedCount       int64   `json:"ai_enhanced_count"`
	FallbackCount         int64   `json:"fallback_count"`
	AIFailureCount        int64   `json:"ai_failure_count"`
	CacheHits             int64   `json:"cache_hits"`
	CacheMisses           int64   `json:"cache_misses"`
	MostPopularLayout     string  `json:"most_popular_layout"`
	MostPopularStyle      string  `json:"most_popular_style"`
	AverageGenerationTime float64 `json:"average_generation_time"`
	LastGenerationTime    float64 `json:"last_generation_time"`
	UptimeSeconds         float64 `json:"uptime_seconds"`
}

func (t *Tracker) RecordCacheHit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheHits++
}

func (t *Tracker) RecordCacheMiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheMisses++
}

func (t *Tracker) RecordAIFailure() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.aiFailures++
}

func (t *Tracker) RecordGeneration(layoutType models.LayoutType, style models.Style, aiEnhanced bool, seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	if aiEnhanced {
		t.aiEnhanced++
	} else {
		t.fallback++
	}

	t.layouts[string(layoutType)]++
	t.styles[string(style)]++
	t.totalSeconds += seconds
	t.lastSeconds = seconds
}

func (t *Tracker) Snapshot() StatsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := StatsSnapshot{
		TotalGenerated:     t.total,
		AIEnhancedCount:    t.aiEnhanced,
		FallbackCount:      t.fallback,
		AIFailureCount:     t.aiFailures,
		CacheHits:          t.cacheHits,
		CacheMisses:        t.cacheMisses,
		MostPopularLayout:  mostPopular(t.layouts),
		MostPopularStyle:   mostPopular(t.styles),
		LastGenerationTime: t.lastSeconds,
		UptimeSeconds:      time.Since(t.startedAt).Seconds(),
	}
	if t.total > 0 {
		snapshot.AverageGenerationTime = t.totalSeconds / float64(t.total)
	}

	return snapshot
}

// mostPopular breaks ties alphabetically so the snapshot is stable.
func mostPopular(counts map[string]int64) string {
	var best string
	var bestCount int64

	for name, count := range counts {
		if count > bestCount || (count == bestCount && count > 0 && name < best) {
			best = name
			bestCount = count
		}
	}

	return best
}
