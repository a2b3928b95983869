package xpyun

import (
	"context"
	"fmt"
	"math"
	"time"
)

const statsDateLayout = "20060102"

// OrderState describes the platform's view of a print order.
type OrderState struct {
	OrderID     string `json:"orderId"`
	State       string `json:"state"`
	PrintStatus string `json:"printStatus"`
	PrintTime   string `json:"printTime"`
	SN          string `json:"sn"`
}

// Order state values reported by the platform.
const (
	OrderStateCompleted = "completed"
	OrderStateFailed    = "failed"
)

// Completed reports whether the order has finished printing.
func (s *OrderState) Completed() bool {
	return s.State == OrderStateCompleted
}

// Failed reports whether the order failed to print.
func (s *OrderState) Failed() bool {
	return s.State == OrderStateFailed
}

// OrderStatistics aggregates print counts for a printer over a date
// range.
type OrderStatistics struct {
	Printed  int    `json:"printCount"`
	Failed   int    `json:"failedCount"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// SuccessRate returns the percentage of printed orders that did not
// fail, rounded to two decimals. Zero orders yields zero.
func (s *OrderStatistics) SuccessRate() float64 {
	if s.Printed == 0 {
		return 0
	}
	rate := float64(s.Printed-s.Failed) / float64(s.Printed) * 100
	return math.Round(rate*100) / 100
}

// ReportPeriod selects the date range a report covers.
type ReportPeriod string

const (
	ReportDaily   ReportPeriod = "daily"
	ReportWeekly  ReportPeriod = "weekly"
	ReportMonthly ReportPeriod = "monthly"
)

// Report is an order statistics summary over a reporting period.
type Report struct {
	Period     ReportPeriod
	DateFrom   string
	DateTo     string
	Statistics *OrderStatistics
	Summary    string
}

// GetOrderState retrieves the current state of a print order.
func (c *Client) GetOrderState(ctx context.Context, orderID string) (*OrderState, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	var state OrderState
	if err := c.call(ctx, "queryOrderState", map[string]any{"orderId": orderID}, &state); err != nil {
		return nil, fmt.Errorf("getting order state: %w", err)
	}

	return &state, nil
}

// GetOrderStatistics retrieves print counts for a printer between two
// dates, both in YYYYMMDD form and inclusive.
func (c *Client) GetOrderStatistics(ctx context.Context, sn, dateFrom, dateTo string) (*OrderStatistics, error) {
	if sn == "" {
		return nil, fmt.Errorf("sn is required")
	}

	params := map[string]any{
		"sn":       sn,
		"dateFrom": dateFrom,
		"dateTo":   dateTo,
	}

	var stats OrderStatistics
	if err := c.call(ctx, "queryOrderStatis", params, &stats); err != nil {
		return nil, fmt.Errorf("getting order statistics: %w", err)
	}
	if stats.DateFrom == "" {
		stats.DateFrom = dateFrom
	}
	if stats.DateTo == "" {
		stats.DateTo = dateTo
	}

	return &stats, nil
}

// GetRecentStatistics retrieves print counts for the last days,
// including today.
func (c *Client) GetRecentStatistics(ctx context.Context, sn string, days int) (*OrderStatistics, error) {
	if days < 1 {
		days = 1
	}

	end := c.now()
	start := end.AddDate(0, 0, -(days - 1))

	return c.GetOrderStatistics(ctx, sn, start.Format(statsDateLayout), end.Format(statsDateLayout))
}

// GetReport builds an order statistics report for the period containing
// the given date.
func (c *Client) GetReport(ctx context.Context, sn string, period ReportPeriod, date time.Time) (*Report, error) {
	if sn == "" {
		return nil, fmt.Errorf("sn is required")
	}

	var start, end time.Time
	switch period {
	case ReportDaily:
		start, end = date, date
	case ReportWeekly:
		start, end = date.AddDate(0, 0, -6), date
	case ReportMonthly:
		start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		end = start.AddDate(0, 1, -1)
	default:
		return nil, fmt.Errorf("unsupported report period: %s", period)
	}

	dateFrom := start.Format(statsDateLayout)
	dateTo := end.Format(statsDateLayout)

	stats, err := c.GetOrderStatistics(ctx, sn, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("building %s report: %w", period, err)
	}

	return &Report{
		Period:     period,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Statistics: stats,
		Summary:    reportSummary(stats, period),
	}, nil
}

// reportSummary renders the one-line Chinese summary shown for a report.
func reportSummary(stats *OrderStatistics, period ReportPeriod) string {
	succeeded := stats.Printed - stats.Failed
	rate := stats.SuccessRate()

	switch period {
	case ReportDaily:
		return fmt.Sprintf("今日订单统计：共 %d 单，成功 %d 单，成功率 %.2f%%", stats.Printed, succeeded, rate)
	case ReportWeekly:
		return fmt.Sprintf("本周订单统计：共 %d 单，日均 %.1f 单，成功率 %.2f%%", stats.Printed, float64(stats.Printed)/7, rate)
	case ReportMonthly:
		return fmt.Sprintf("本月订单统计：共 %d 单，日均 %.1f 单，成功率 %.2f%%", stats.Printed, float64(stats.Printed)/30, rate)
	}
	return ""
}
