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
	"gorm.io/gorm"
)

func TestCostLotService_CreateCostLot(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	accountID := uuid.MustParse(testAccountID)
	purchaseDate := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockIRepo.EXPECT().CreateCostLot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockIRepo.EXPECT().LogHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.History{}, nil).AnyTimes()

	s := NewCostLotService(mockIRepo, NewHistoryService(mockIRepo))

	gotRes, err := s.CreateCostLot(context.Background(), model.CostLotBody{
		UserID:       accountID,
		AccountID:    valid.UUIDPointer(accountID),
		Sku:          "A",
		Quantity:     valid.Float64Pointer(10),
		UnitCost:     valid.Float64Pointer(2.5),
		ShipmentCost: 7,
		PurchaseDate: valid.DayTimePointer(purchaseDate),
	})
	if err != nil {
		t.Fatalf("CreateCostLot() error = %v", err)
	}

	if gotRes.Sku != "A" || gotRes.CostMethod != "BATCH" {
		t.Errorf("CreateCostLot() gotRes = %+v, want sku A with default BATCH method", gotRes.CostLot)
	}
	if gotRes.TotalCost != 32 { // 10*2.5 + 7
		t.Errorf("CreateCostLot() TotalCost = %v, want 32", gotRes.TotalCost)
	}
}

func TestCostLotService_CreateCostLotValidation(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	s := NewCostLotService(mockIRepo, NewHistoryService(mockIRepo))

	accountID := uuid.MustParse(testAccountID)
	base := model.CostLotBody{
		AccountID:    valid.UUIDPointer(accountID),
		Sku:          "A",
		Quantity:     valid.Float64Pointer(10),
		UnitCost:     valid.Float64Pointer(2),
		PurchaseDate: valid.DayTimePointer(time.Now()),
	}

	tests := []struct {
		name   string
		mutate func(b model.CostLotBody) model.CostLotBody
	}{
		{"zero quantity", func(b model.CostLotBody) model.CostLotBody { b.Quantity = valid.Float64Pointer(0); return b }},
		{"negative unit cost", func(b model.CostLotBody) model.CostLotBody { b.UnitCost = valid.Float64Pointer(-1); return b }},
		{"negative shipment cost", func(b model.CostLotBody) model.CostLotBody { b.ShipmentCost = -0.5; return b }},
		{"unknown cost method", func(b model.CostLotBody) model.CostLotBody { b.CostMethod = "LIFO"; return b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreateCostLot(context.Background(), tt.mutate(base)); err == nil {
				t.Errorf("CreateCostLot() expected error, got nil")
			}
		})
	}
}

func TestCostLotService_UpdateCostLotPartial(t *testing.T) {
	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	id := uuid.New()
	existing := model.CostLot{
		Sku:          "A",
		Quantity:     10,
		UnitCost:     2,
		ShipmentCost: 5,
		PurchaseDate: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	existing.ID = id

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockIRepo.EXPECT().GetOneCostLot(gomock.Any(), id.String(), gomock.Any()).Return(existing, nil)
	mockIRepo.EXPECT().UpdateCostLot(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, lot model.CostLot, tx *gorm.DB) (model.CostLot, error) {
			return lot, nil
		})
	mockIRepo.EXPECT().LogHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.History{}, nil).AnyTimes()

	s := NewCostLotService(mockIRepo, NewHistoryService(mockIRepo))

	gotRes, err := s.UpdateCostLot(context.Background(), model.UpdateCostLotBody{
		ID:       id,
		UnitCost: valid.Float64Pointer(3),
	})
	if err != nil {
		t.Fatalf("UpdateCostLot() error = %v", err)
	}

	// untouched fields survive the partial update
	if gotRes.UnitCost != 3 || gotRes.Quantity != 10 || gotRes.ShipmentCost != 5 {
		t.Errorf("UpdateCostLot() gotRes = %+v, want unit cost 3 with quantity and shipment kept", gotRes.CostLot)
	}
	if gotRes.TotalCost != 35 {
		t.Errorf("UpdateCostLot() TotalCost = %v, want 35", gotRes.TotalCost)
	}
}
