package service

import (
	"context"
	"net/http"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type ChartService struct {
	profit ProfitServiceInterface
}

func NewChartService(profit ProfitServiceInterface) ChartServiceInterface {
	return &ChartService{profit: profit}
}

type ChartServiceInterface interface {
	GetChartTrend(ctx context.Context, req model.ChartTrendRequest) (res model.ChartTrendResponse, err error)
	GetChartCompare(ctx context.Context, req model.ChartTrendRequest) (res model.ChartCompareResponse, err error)
}

func (s *ChartService) GetChartTrend(ctx context.Context, req model.ChartTrendRequest) (res model.ChartTrendResponse, err error) {
	log := logger.WithCtx(ctx, "ChartService.GetChartTrend").WithField("req", req)

	req, start, end, err := normalizeChartRequest(req)
	if err != nil {
		return res, err
	}

	labels, series, total, err := s.trend(ctx, req, start, end)
	if err != nil {
		log.WithError(err).Error("Build trend series error in GetChartTrend")
		return res, err
	}

	return model.ChartTrendResponse{Labels: labels, Series: series, Total: total}, nil
}

// GetChartCompare aligns the requested window with the window of identical
// width that ends the day before it starts, bucket index by bucket index.
func (s *ChartService) GetChartCompare(ctx context.Context, req model.ChartTrendRequest) (res model.ChartCompareResponse, err error) {
	log := logger.WithCtx(ctx, "ChartService.GetChartCompare").WithField("req", req)

	req, start, end, err := normalizeChartRequest(req)
	if err != nil {
		return res, err
	}

	labels, current, currentTotal, err := s.trend(ctx, req, start, end)
	if err != nil {
		log.WithError(err).Error("Build current series error in GetChartCompare")
		return res, err
	}

	windowDays := int(utils.BeginOfDay(end).Sub(utils.BeginOfDay(start)).Hours() / 24)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -windowDays)
	_, previous, previousTotal, err := s.trend(ctx, req, prevStart, prevEnd)
	if err != nil {
		log.WithError(err).Error("Build previous series error in GetChartCompare")
		return res, err
	}

	// Previous may bucket into fewer or more slots (months of unequal length),
	// alignment is positional and pads with zeros.
	if len(previous) > len(current) {
		previous = previous[:len(current)]
	}
	for len(previous) < len(current) {
		previous = append(previous, 0)
	}

	return model.ChartCompareResponse{
		Labels:        labels,
		Current:       current,
		Previous:      previous,
		CurrentTotal:  currentTotal,
		PreviousTotal: previousTotal,
	}, nil
}

func normalizeChartRequest(req model.ChartTrendRequest) (model.ChartTrendRequest, time.Time, time.Time, error) {
	if req.Metric == "" {
		req.Metric = utils.METRIC_SALES
	}
	switch req.Metric {
	case utils.METRIC_SALES, utils.METRIC_PROFIT, utils.METRIC_ADVERTISING, utils.METRIC_RETURNS:
	default:
		return req, time.Time{}, time.Time{}, ginext.NewError(http.StatusBadRequest, "unsupported metric: "+req.Metric)
	}

	if req.Period == "" {
		req.Period = utils.PERIOD_DAY
	}
	if !utils.SupportedPeriod(req.Period) {
		return req, time.Time{}, time.Time{}, ginext.NewError(http.StatusBadRequest, "unsupported period: "+req.Period)
	}

	end := time.Now()
	if req.EndDate != nil {
		end = *req.EndDate
	}
	start := end.AddDate(0, 0, -utils.DEFAULT_WINDOW_DAYS)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if start.After(end) {
		return req, time.Time{}, time.Time{}, ginext.NewError(http.StatusBadRequest, "start_date must not be after end_date")
	}

	return req, utils.BeginOfDay(start), utils.BeginOfDay(end), nil
}

// trend builds a dense series for one window: every bucket the window touches
// appears, buckets without facts carry zero.
func (s *ChartService) trend(ctx context.Context, req model.ChartTrendRequest, start, end time.Time) ([]string, []float64, float64, error) {
	filter := model.ProfitFilterParam{
		UserRole:      req.UserRole,
		UserCallAPI:   req.UserCallAPI,
		AccountID:     req.AccountID,
		MarketplaceID: req.MarketplaceID,
		Sku:           req.Sku,
		StartDate:     valid.DayTimePointer(start),
		EndDate:       valid.DayTimePointer(end),
		Period:        req.Period,
		Dimension:     utils.DIMENSION_PERIOD,
	}
	breakdown, err := s.profit.GetProfitBreakdown(ctx, filter)
	if err != nil {
		return nil, nil, 0, err
	}

	byKey := make(map[string]float64, len(breakdown.Data))
	for _, row := range breakdown.Data {
		byKey[row.Key] = chartMetricValue(row.ProfitSummaryResponse, req.Metric)
	}

	labels := periodLabels(start, end, req.Period)
	series := make([]float64, len(labels))
	var total float64
	for i, label := range labels {
		series[i] = utils.Round2(byKey[label])
		total += byKey[label]
	}

	return labels, series, utils.Round2(total), nil
}

func chartMetricValue(row model.ProfitSummaryResponse, metric string) float64 {
	switch metric {
	case utils.METRIC_PROFIT:
		return row.NetProfit
	case utils.METRIC_ADVERTISING:
		return row.Advertising
	case utils.METRIC_RETURNS:
		return row.Refunds + row.ReturnsCost
	default:
		return row.Revenue
	}
}

func periodLabels(start, end time.Time, period string) []string {
	labels := []string{}
	for d := utils.BeginOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := PeriodKey(d, period)
		if len(labels) == 0 || labels[len(labels)-1] != key {
			labels = append(labels, key)
		}
	}
	return labels
}
