package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-analytics/internal/analytics"
	"github.com/spec-kit/ticket-analytics/internal/api/dto"
	"github.com/spec-kit/ticket-analytics/internal/service"
	apperrors "github.com/spec-kit/ticket-analytics/pkg/util"
)

// AnalyticsHandler serves breakdowns, trend series and insights.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Breakdown GET /analytics/breakdown?dimension=category.
func (h *AnalyticsHandler) Breakdown(c *fiber.Ctx) error {
	query, err := parseBreakdownQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.Breakdown(c.UserContext(), query)
	if err != nil {
		return err
	}

	total := 0
	for _, item := range items {
		total += item.Count
	}
	return c.JSON(fiber.Map{"data": dto.BreakdownResponse{
		Dimension: string(query.Dimension),
		Total:     total,
		Items:     items,
	}})
}

// Trend GET /analytics/trend?granularity=weekly|monthly.
func (h *AnalyticsHandler) Trend(c *fiber.Ctx) error {
	query, err := parseTrendQuery(c)
	if err != nil {
		return err
	}

	points, err := h.service.Trend(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TrendResponse{
		Granularity: string(query.Granularity),
		Points:      points,
	}})
}

// Insights GET /analytics/insights?granularity=weekly|monthly.
func (h *AnalyticsHandler) Insights(c *fiber.Ctx) error {
	query, err := parseTrendQuery(c)
	if err != nil {
		return err
	}

	insights, err := h.service.Insights(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.InsightsResponse{
		Granularity: string(query.Granularity),
		Insights:    insights,
	}})
}

// Export GET /analytics/export. Serializes a breakdown to CSV; the
// aggregation itself stays in the analytics core, this handler only formats
// bytes.
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	query, err := parseBreakdownQuery(c)
	if err != nil {
		return err
	}

	items, err := h.service.Breakdown(c.UserContext(), query)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"category", "count", "percentage"})
	for _, item := range items {
		_ = w.Write([]string{
			item.Category,
			strconv.Itoa(item.Count),
			fmt.Sprintf("%.2f", item.Percentage),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s-breakdown.csv", query.Dimension))
	return c.Send(buf.Bytes())
}

func parseBreakdownQuery(c *fiber.Ctx) (service.BreakdownQuery, error) {
	dimension := analytics.Dimension(c.Query("dimension", string(analytics.DimensionCategory)))
	found := false
	for _, known := range analytics.Dimensions() {
		if dimension == known {
			found = true
			break
		}
	}
	if !found {
		return service.BreakdownQuery{}, apperrors.NewValidationError("unknown dimension", fiber.Map{
			"dimension": string(dimension),
		})
	}

	query := service.BreakdownQuery{Dimension: dimension}
	if raw := c.Query("service"); raw != "" {
		key, err := parseServiceKey(raw)
		if err != nil {
			return service.BreakdownQuery{}, err
		}
		query.Service = &key
	}
	if importID := c.Query("import_id"); importID != "" {
		query.ImportID = &importID
	}
	return query, nil
}

func parseTrendQuery(c *fiber.Ctx) (service.TrendQuery, error) {
	granularity := service.Granularity(c.Query("granularity", string(service.GranularityWeekly)))
	if granularity != service.GranularityWeekly && granularity != service.GranularityMonthly {
		return service.TrendQuery{}, apperrors.NewValidationError("granularity must be weekly or monthly", nil)
	}

	query := service.TrendQuery{Granularity: granularity}
	if raw := c.Query("service"); raw != "" {
		key, err := parseServiceKey(raw)
		if err != nil {
			return service.TrendQuery{}, err
		}
		query.Service = &key
	}
	if importID := c.Query("import_id"); importID != "" {
		query.ImportID = &importID
	}
	return query, nil
}
