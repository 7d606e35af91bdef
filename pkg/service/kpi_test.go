package service

import (
	"context"
	"testing"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/mocks"
	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func TestBuildKpiRow(t *testing.T) {
	accountID := uuid.MustParse(testAccountID)
	asOf := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)

	row := buildKpiRow(accountID, model.SkuKpiInput{
		Sku:          "A",
		StockOnHand:  90,
		UnitsSold30d: 60,
		Revenue30d:   1234.567,
	}, asOf)

	if row.SalesVelocity != 2 {
		t.Errorf("SalesVelocity = %v, want 2", row.SalesVelocity)
	}
	if row.DaysOfStock != 45 {
		t.Errorf("DaysOfStock = %v, want 45", row.DaysOfStock)
	}
	if row.Revenue30d != 1234.57 {
		t.Errorf("Revenue30d = %v, want 1234.57", row.Revenue30d)
	}
}

func TestBuildKpiRowZeroVelocity(t *testing.T) {
	row := buildKpiRow(uuid.MustParse(testAccountID), model.SkuKpiInput{
		Sku:         "B",
		StockOnHand: 10,
	}, time.Now())

	// no sales means no velocity and no projection, never a division by zero
	if row.SalesVelocity != 0 || row.DaysOfStock != 0 {
		t.Errorf("zero sales row = %+v, want zero velocity and days of stock", row)
	}
}

func TestKpiService_RecalculateKpi(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	accountID := uuid.MustParse(testAccountID)
	inputs := []model.SkuKpiInput{
		{Sku: "A", StockOnHand: 90, UnitsSold30d: 60, Revenue30d: 600},
		{Sku: "B", StockOnHand: 10, UnitsSold30d: 0, Revenue30d: 0},
	}

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockIRepo.EXPECT().GetSkuKpiInputs(gomock.Any(), accountID, gomock.Any(), gomock.Any()).Return(inputs, nil)
	mockIRepo.EXPECT().UpsertKpiSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s := NewKpiService(mockIRepo)

	gotRes, err := s.RecalculateKpi(context.Background(), model.RecalculateKpiRequest{
		AccountID: valid.StringPointer(testAccountID),
	})
	if err != nil {
		t.Fatalf("RecalculateKpi() error = %v", err)
	}
	if gotRes.SkuCount != 2 {
		t.Errorf("RecalculateKpi() SkuCount = %v, want 2", gotRes.SkuCount)
	}
	if gotRes.AccountID != accountID {
		t.Errorf("RecalculateKpi() AccountID = %v, want %v", gotRes.AccountID, accountID)
	}
}

func TestKpiService_RecalculateKpiValidation(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	s := NewKpiService(mocks.NewMockPGInterface(ctr1))

	if _, err := s.RecalculateKpi(context.Background(), model.RecalculateKpiRequest{}); err == nil {
		t.Errorf("RecalculateKpi() expected error for missing account_id, got nil")
	}
}
