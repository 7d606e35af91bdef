package service

import (
	"context"
	"testing"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/mocks"
	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/golang/mock/gomock"
)

func TestPnlWindows(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	windows := pnlWindows(now)

	if len(windows) != 13 {
		t.Fatalf("pnlWindows() returned %d windows, want 13", len(windows))
	}

	if windows[0].label != "2026-08" {
		t.Errorf("first window label = %v, want 2026-08", windows[0].label)
	}
	if !windows[0].start.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) || !windows[0].end.Equal(now) {
		t.Errorf("first window = [%v, %v], want month to date", windows[0].start, windows[0].end)
	}

	if windows[1].label != "2026-07" {
		t.Errorf("second window label = %v, want 2026-07", windows[1].label)
	}
	if !windows[1].end.Equal(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second window end = %v, want 2026-07-31", windows[1].end)
	}

	if windows[12].label != "2025-08" {
		t.Errorf("last window label = %v, want 2025-08", windows[12].label)
	}
	if !windows[12].end.Equal(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last window end = %v, want 2025-08-31", windows[12].end)
	}
}

// fixedOverviewService returns the same summary for every window.
type fixedOverviewService struct {
	summary model.ProfitSummaryResponse
}

func (s *fixedOverviewService) OverviewProfit(ctx context.Context, req model.ProfitFilterParam) (model.ProfitSummaryResponse, error) {
	return s.summary, nil
}

func (s *fixedOverviewService) GetProfitBreakdown(ctx context.Context, req model.ProfitFilterParam) (model.ListProfitBreakdownResponse, error) {
	return model.ListProfitBreakdownResponse{}, nil
}

func TestPnlService_GetPnlReport(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockIRepo.EXPECT().GetFeeFacts(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FeeFact{
		{FeeType: "FBA pick & pack", Amount: 7},
		{FeeType: "Referral fee", Amount: 3},
	}, nil).Times(13)
	mockIRepo.EXPECT().GetRefundFacts(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RefundFact{
		{Amount: 5},
		{Amount: -2},
	}, nil).Times(13)
	mockIRepo.EXPECT().GetAdSpendFacts(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.AdSpendFact{
		{CampaignName: "SBV brand push", Spend: 4},
	}, nil).Times(13)

	overview := &fixedOverviewService{summary: model.ProfitSummaryResponse{
		Revenue: 100, UnitsSold: 5, Fees: 10, Refunds: 3, Advertising: 8,
		NetProfit: 40, NetMargin: 40,
	}}
	s := NewPnlService(mockIRepo, overview)

	gotRes, err := s.GetPnlReport(context.Background(), model.PnlRequest{
		AccountID: valid.StringPointer(testAccountID),
	})
	if err != nil {
		t.Fatalf("GetPnlReport() error = %v", err)
	}

	if len(gotRes.Periods) != 13 {
		t.Fatalf("GetPnlReport() returned %d periods, want 13", len(gotRes.Periods))
	}
	if len(gotRes.Rows) != 13 {
		t.Fatalf("GetPnlReport() returned %d rows, want 13", len(gotRes.Rows))
	}

	rowByName := map[string]model.PnlRow{}
	for _, row := range gotRes.Rows {
		rowByName[row.Parameter] = row
	}

	if got := rowByName["Sales"].Total; got != 1300 {
		t.Errorf("Sales total = %v, want 1300", got)
	}
	if got := rowByName["Net profit"].Total; got != 520 {
		t.Errorf("Net profit total = %v, want 520", got)
	}
	if got := rowByName["Units sold"].Total; got != 65 {
		t.Errorf("Units sold total = %v, want 65", got)
	}

	// ACOS is spend over revenue per period, never summed
	if got := rowByName["ACOS"].Periods[0].Value; got != 8 {
		t.Errorf("ACOS period value = %v, want 8", got)
	}
	if got := rowByName["ACOS"].Total; got != 0 {
		t.Errorf("ACOS total = %v, want 0", got)
	}

	// ratio rows are never summed across periods
	if got := rowByName["Net margin"].Total; got != 0 {
		t.Errorf("Net margin total = %v, want 0", got)
	}
	if got := rowByName["Net margin"].Periods[0].Value; got != 40 {
		t.Errorf("Net margin period value = %v, want 40", got)
	}

	fees := rowByName["Amazon fees"]
	if !fees.IsExpandable || len(fees.Children) != 4 {
		t.Fatalf("Amazon fees children = %d, want 4 expandable", len(fees.Children))
	}
	feeChild := map[string]model.PnlRow{}
	for _, child := range fees.Children {
		feeChild[child.Parameter] = child
	}
	if got := feeChild["FBA fees"].Total; got != 91 {
		t.Errorf("FBA fees total = %v, want 91", got)
	}
	if got := feeChild["Referral fees"].Total; got != 39 {
		t.Errorf("Referral fees total = %v, want 39", got)
	}

	refunds := rowByName["Refunds"]
	refundChild := map[string]model.PnlRow{}
	for _, child := range refunds.Children {
		refundChild[child.Parameter] = child
	}
	if got := refundChild["Refunded amount"].Total; got != 65 {
		t.Errorf("Refunded amount total = %v, want 65", got)
	}
	if got := refundChild["Refund reimbursements"].Total; got != -26 {
		t.Errorf("Refund reimbursements total = %v, want -26", got)
	}

	ads := rowByName["Advertising"]
	adChild := map[string]model.PnlRow{}
	for _, child := range ads.Children {
		adChild[child.Parameter] = child
	}
	if got := adChild["Sponsored brands video"].Total; got != 52 {
		t.Errorf("Sponsored brands video total = %v, want 52", got)
	}
	if got := adChild["Sponsored products"].Total; got != 0 {
		t.Errorf("Sponsored products total = %v, want 0", got)
	}
}

func TestPnlService_GetPnlReportValidation(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	s := NewPnlService(mocks.NewMockPGInterface(ctr1), &fixedOverviewService{})

	if _, err := s.GetPnlReport(context.Background(), model.PnlRequest{}); err == nil {
		t.Errorf("GetPnlReport() expected error for missing account_id, got nil")
	}
	if _, err := s.GetPnlReport(context.Background(), model.PnlRequest{AccountID: valid.StringPointer("nope")}); err == nil {
		t.Errorf("GetPnlReport() expected error for malformed account_id, got nil")
	}
}
