package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/valid"
)

// stubProfitService answers breakdown requests from a fixed bucket->figures map,
// echoing only the buckets inside the requested window.
type stubProfitService struct {
	rows  map[string]model.ProfitSummaryResponse
	calls []model.ProfitFilterParam
}

func (s *stubProfitService) OverviewProfit(ctx context.Context, req model.ProfitFilterParam) (model.ProfitSummaryResponse, error) {
	return model.ProfitSummaryResponse{}, nil
}

func (s *stubProfitService) GetProfitBreakdown(ctx context.Context, req model.ProfitFilterParam) (model.ListProfitBreakdownResponse, error) {
	s.calls = append(s.calls, req)
	res := model.ListProfitBreakdownResponse{}
	seen := map[string]bool{}
	for d := *req.StartDate; !d.After(*req.EndDate); d = d.AddDate(0, 0, 1) {
		key := PeriodKey(d, req.Period)
		if seen[key] {
			continue
		}
		seen[key] = true
		if summary, ok := s.rows[key]; ok {
			res.Data = append(res.Data, model.ProfitBreakdownRow{Key: key, ProfitSummaryResponse: summary})
		}
	}
	return res, nil
}

func TestChartService_GetChartTrend(t *testing.T) {
	stub := &stubProfitService{rows: map[string]model.ProfitSummaryResponse{
		"2021-06-02": {Revenue: 50, NetProfit: 20},
	}}
	s := NewChartService(stub)

	gotRes, err := s.GetChartTrend(context.Background(), model.ChartTrendRequest{
		AccountID: valid.StringPointer(testAccountID),
		StartDate: valid.DayTimePointer(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   valid.DayTimePointer(time.Date(2021, 6, 3, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("GetChartTrend() error = %v", err)
	}

	wantRes := model.ChartTrendResponse{
		Labels: []string{"2021-06-01", "2021-06-02", "2021-06-03"},
		Series: []float64{0, 50, 0},
		Total:  50,
	}
	if !reflect.DeepEqual(gotRes, wantRes) {
		t.Errorf("GetChartTrend() gotRes = %+v, want %+v", gotRes, wantRes)
	}
}

func TestChartService_GetChartTrendProfitMetric(t *testing.T) {
	stub := &stubProfitService{rows: map[string]model.ProfitSummaryResponse{
		"2021-06-02": {Revenue: 50, NetProfit: 20},
	}}
	s := NewChartService(stub)

	gotRes, err := s.GetChartTrend(context.Background(), model.ChartTrendRequest{
		AccountID: valid.StringPointer(testAccountID),
		Metric:    "profit",
		StartDate: valid.DayTimePointer(time.Date(2021, 6, 2, 0, 0, 0, 0, time.UTC)),
		EndDate:   valid.DayTimePointer(time.Date(2021, 6, 2, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("GetChartTrend() error = %v", err)
	}
	if gotRes.Total != 20 || gotRes.Series[0] != 20 {
		t.Errorf("GetChartTrend() profit metric = %+v, want series [20]", gotRes)
	}
}

func TestChartService_GetChartCompare(t *testing.T) {
	stub := &stubProfitService{rows: map[string]model.ProfitSummaryResponse{
		"2021-06-02": {Revenue: 4},
		"2021-06-05": {Revenue: 10},
	}}
	s := NewChartService(stub)

	gotRes, err := s.GetChartCompare(context.Background(), model.ChartTrendRequest{
		AccountID: valid.StringPointer(testAccountID),
		StartDate: valid.DayTimePointer(time.Date(2021, 6, 4, 0, 0, 0, 0, time.UTC)),
		EndDate:   valid.DayTimePointer(time.Date(2021, 6, 6, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("GetChartCompare() error = %v", err)
	}

	wantRes := model.ChartCompareResponse{
		Labels:        []string{"2021-06-04", "2021-06-05", "2021-06-06"},
		Current:       []float64{0, 10, 0},
		Previous:      []float64{0, 4, 0},
		CurrentTotal:  10,
		PreviousTotal: 4,
	}
	if !reflect.DeepEqual(gotRes, wantRes) {
		t.Errorf("GetChartCompare() gotRes = %+v, want %+v", gotRes, wantRes)
	}

	// the previous window is the same width and ends the day before the current starts
	if len(stub.calls) != 2 {
		t.Fatalf("expected 2 breakdown calls, got %d", len(stub.calls))
	}
	prev := stub.calls[1]
	if !prev.StartDate.Equal(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)) ||
		!prev.EndDate.Equal(time.Date(2021, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("previous window = [%v, %v], want [2021-06-01, 2021-06-03]", prev.StartDate, prev.EndDate)
	}
}

func TestChartService_GetChartTrendValidation(t *testing.T) {
	s := NewChartService(&stubProfitService{})

	tests := []struct {
		name string
		req  model.ChartTrendRequest
	}{
		{"unsupported metric", model.ChartTrendRequest{AccountID: valid.StringPointer(testAccountID), Metric: "velocity"}},
		{"unsupported period", model.ChartTrendRequest{AccountID: valid.StringPointer(testAccountID), Period: "fortnight"}},
		{
			"start after end",
			model.ChartTrendRequest{
				AccountID: valid.StringPointer(testAccountID),
				StartDate: valid.DayTimePointer(time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)),
				EndDate:   valid.DayTimePointer(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.GetChartTrend(context.Background(), tt.req); err == nil {
				t.Errorf("GetChartTrend() expected error, got nil")
			}
		})
	}
}
