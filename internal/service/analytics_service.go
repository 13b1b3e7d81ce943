package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-analytics/internal/analytics"
	"github.com/spec-kit/ticket-analytics/internal/domain"
	"github.com/spec-kit/ticket-analytics/internal/persistence"
	"github.com/spec-kit/ticket-analytics/internal/repository"
)

const cachePrefix = "analytics:"

// Granularity selects the trend bucketing period.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// AnalyticsService computes breakdowns, trend series and insights over
// persisted ticket records, with best-effort Redis caching in front.
type AnalyticsService struct {
	records    repository.RecordRepository
	categories *analytics.Normalizer
	cache      *persistence.Redis
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// AnalyticsDependencies bundles collaborators for the analytics service.
type AnalyticsDependencies struct {
	RecordRepo repository.RecordRepository
	Categories *analytics.Normalizer
	Cache      *persistence.Redis
	Logger     *zap.Logger
	CacheTTL   time.Duration
}

// BreakdownQuery selects records and a grouping dimension.
type BreakdownQuery struct {
	Dimension analytics.Dimension
	Service   *domain.ServiceKey
	ImportID  *string
}

// TrendQuery selects records and a bucketing granularity.
type TrendQuery struct {
	Granularity Granularity
	Service     *domain.ServiceKey
	ImportID    *string
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(deps AnalyticsDependencies) *AnalyticsService {
	return &AnalyticsService{
		records:    deps.RecordRepo,
		categories: deps.Categories,
		cache:      deps.Cache,
		logger:     deps.Logger,
		cacheTTL:   deps.CacheTTL,
	}
}

// Breakdown groups the selected records along the queried dimension. For
// category dimensions the category normalizer is applied first when the
// query names a service.
func (s *AnalyticsService) Breakdown(ctx context.Context, q BreakdownQuery) ([]domain.CategoryBreakdown, error) {
	key := s.cacheKey("breakdown", string(q.Dimension), serviceKeyPart(q.Service), strPart(q.ImportID))
	if cached, ok := s.cache.GetString(ctx, key); ok {
		var out []domain.CategoryBreakdown
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	records, err := s.load(ctx, q.Service, q.ImportID)
	if err != nil {
		return nil, err
	}

	if q.Service != nil && (q.Dimension == analytics.DimensionCategory || q.Dimension == analytics.DimensionSubCategory) {
		s.normalizeCategories(records, *q.Service)
	}

	out, err := analytics.Breakdown(records, q.Dimension)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, out)
	return out, nil
}

// Trend returns the time-ordered count series for the selected records.
func (s *AnalyticsService) Trend(ctx context.Context, q TrendQuery) ([]domain.TrendPoint, error) {
	key := s.cacheKey("trend", string(q.Granularity), serviceKeyPart(q.Service), strPart(q.ImportID))
	if cached, ok := s.cache.GetString(ctx, key); ok {
		var out []domain.TrendPoint
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
	}

	records, err := s.load(ctx, q.Service, q.ImportID)
	if err != nil {
		return nil, err
	}

	out := bucketTrend(records, q.Granularity)
	s.store(ctx, key, out)
	return out, nil
}

// Insights analyzes the trend series and generates dashboard insights.
func (s *AnalyticsService) Insights(ctx context.Context, q TrendQuery) ([]domain.TrendInsight, error) {
	points, err := s.Trend(ctx, q)
	if err != nil {
		return nil, err
	}

	stats := analytics.AnalyzeTrend(points)
	if q.Granularity == GranularityMonthly {
		return analytics.MonthlyInsights(points, stats), nil
	}
	return analytics.WeeklyInsights(points, stats), nil
}

// Highlighted exposes the configured highlighted categories for a service.
func (s *AnalyticsService) Highlighted(service domain.ServiceKey) []string {
	return s.categories.Highlighted(service)
}

// InvalidateCache drops every cached analytics result. Called after imports
// change the underlying data.
func (s *AnalyticsService) InvalidateCache(ctx context.Context) error {
	return s.cache.DeleteByPrefix(ctx, cachePrefix)
}

func (s *AnalyticsService) load(ctx context.Context, service *domain.ServiceKey, importID *string) ([]domain.TicketRecord, error) {
	return s.records.ListWithFilter(ctx, repository.RecordFilter{
		Service:  service,
		ImportID: importID,
	})
}

func (s *AnalyticsService) normalizeCategories(records []domain.TicketRecord, service domain.ServiceKey) {
	for i := range records {
		if records[i].SubCategory != "" {
			records[i].SubCategory = s.categories.Normalize(service, records[i].SubCategory)
		}
		if records[i].Category != "" {
			records[i].Category = s.categories.Normalize(service, records[i].Category)
		}
	}
}

func (s *AnalyticsService) cacheKey(parts ...string) string {
	return cachePrefix + strings.Join(parts, ":")
}

func (s *AnalyticsService) store(ctx context.Context, key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.SetString(ctx, key, string(encoded), s.cacheTTL)
}

// bucketTrend groups records into ordered periods. Weekly buckets follow the
// assigned week numbers; monthly buckets follow the request-time calendar
// month.
func bucketTrend(records []domain.TicketRecord, granularity Granularity) []domain.TrendPoint {
	if granularity == GranularityMonthly {
		counts := make(map[string]int)
		for i := range records {
			counts[records[i].RequestTime.Format("2006-01")]++
		}
		periods := make([]string, 0, len(counts))
		for period := range counts {
			periods = append(periods, period)
		}
		sort.Strings(periods)

		out := make([]domain.TrendPoint, 0, len(periods))
		for _, period := range periods {
			out = append(out, domain.TrendPoint{Period: period, Count: counts[period]})
		}
		return out
	}

	counts := make(map[int]int)
	for i := range records {
		if records[i].WeekNumber > 0 {
			counts[records[i].WeekNumber]++
		}
	}
	weeks := make([]int, 0, len(counts))
	for week := range counts {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	out := make([]domain.TrendPoint, 0, len(weeks))
	for _, week := range weeks {
		out = append(out, domain.TrendPoint{Period: fmt.Sprintf("Week %d", week), Count: counts[week]})
	}
	return out
}

func serviceKeyPart(service *domain.ServiceKey) string {
	if service == nil {
		return "all"
	}
	return string(*service)
}

func strPart(s *string) string {
	if s == nil {
		return "all"
	}
	return *s
}
