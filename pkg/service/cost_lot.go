package service

import (
	"context"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/repo"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type CostLotService struct {
	repo           repo.PGInterface
	historyService HistoryServiceInterface
}

func NewCostLotService(repo repo.PGInterface, historyService HistoryServiceInterface) CostLotServiceInterface {
	return &CostLotService{repo: repo, historyService: historyService}
}

type CostLotServiceInterface interface {
	CreateCostLot(ctx context.Context, req model.CostLotBody) (res model.CostLotDetailResponse, err error)
	GetOneCostLot(ctx context.Context, id uuid.UUID) (res model.CostLotDetailResponse, err error)
	UpdateCostLot(ctx context.Context, req model.UpdateCostLotBody) (res model.CostLotDetailResponse, err error)
	DeleteCostLot(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetListCostLot(ctx context.Context, req model.CostLotParam) (res model.ListCostLotResponse, err error)
}

func (s *CostLotService) CreateCostLot(ctx context.Context, req model.CostLotBody) (res model.CostLotDetailResponse, err error) {
	log := logger.WithCtx(ctx, "CostLotService.CreateCostLot").WithField("req", req)

	if valid.Float64(req.Quantity) <= 0 {
		return res, ginext.NewError(http.StatusBadRequest, "quantity must be greater than 0")
	}
	if valid.Float64(req.UnitCost) < 0 || req.ShipmentCost < 0 {
		return res, ginext.NewError(http.StatusBadRequest, "cost must not be negative")
	}
	costMethod := req.CostMethod
	if costMethod == "" {
		costMethod = utils.COST_METHOD_BATCH
	}
	switch costMethod {
	case utils.COST_METHOD_BATCH, utils.COST_METHOD_TIME_PERIOD, utils.COST_METHOD_WEIGHTED_AVERAGE:
	default:
		return res, ginext.NewError(http.StatusBadRequest, "unsupported cost_method: "+costMethod)
	}

	lot := &model.CostLot{
		AccountID:    valid.UUID(req.AccountID),
		Sku:          req.Sku,
		Quantity:     valid.Float64(req.Quantity),
		UnitCost:     valid.Float64(req.UnitCost),
		ShipmentCost: req.ShipmentCost,
		CostMethod:   costMethod,
		PurchaseDate: valid.DayTime(req.PurchaseDate),
	}
	lot.CreatorID = req.UserID
	lot.UpdaterID = req.UserID

	if err = s.repo.CreateCostLot(ctx, lot, nil); err != nil {
		log.WithError(err).Error("error_500: Error when call CreateCostLot in CreateCostLot")
		return res, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	desc := utils.ACTION_CREATE_COST_LOT + " in CreateCostLot func - CostLotService"
	history, _ := utils.PackHistoryModel(context.Background(), req.UserID, req.UserID.String(), lot.ID, utils.TABLE_COST_LOT, utils.ACTION_CREATE_COST_LOT, desc, lot, req)
	s.historyService.LogHistory(context.Background(), history)

	return model.CostLotDetailResponse{CostLot: *lot, TotalCost: LotTotalCost(*lot)}, nil
}

func (s *CostLotService) GetOneCostLot(ctx context.Context, id uuid.UUID) (res model.CostLotDetailResponse, err error) {
	log := logger.WithCtx(ctx, "CostLotService.GetOneCostLot").WithField("id", id)

	lot, err := s.repo.GetOneCostLot(ctx, id.String(), nil)
	if err != nil {
		log.WithError(err).Error("Error when call GetOneCostLot in GetOneCostLot")
		return res, err
	}

	return model.CostLotDetailResponse{CostLot: lot, TotalCost: LotTotalCost(lot)}, nil
}

// UpdateCostLot applies only the provided fields, then audits the edit. Cost
// corrections change future report output, the trail records who did what.
func (s *CostLotService) UpdateCostLot(ctx context.Context, req model.UpdateCostLotBody) (res model.CostLotDetailResponse, err error) {
	log := logger.WithCtx(ctx, "CostLotService.UpdateCostLot").WithField("req", req)

	lot, err := s.repo.GetOneCostLot(ctx, req.ID.String(), nil)
	if err != nil {
		log.WithError(err).Error("Error when call GetOneCostLot in UpdateCostLot")
		return res, err
	}

	if req.Quantity != nil {
		if valid.Float64(req.Quantity) <= 0 {
			return res, ginext.NewError(http.StatusBadRequest, "quantity must be greater than 0")
		}
		lot.Quantity = valid.Float64(req.Quantity)
	}
	if req.UnitCost != nil {
		if valid.Float64(req.UnitCost) < 0 {
			return res, ginext.NewError(http.StatusBadRequest, "cost must not be negative")
		}
		lot.UnitCost = valid.Float64(req.UnitCost)
	}
	if req.ShipmentCost != nil {
		if valid.Float64(req.ShipmentCost) < 0 {
			return res, ginext.NewError(http.StatusBadRequest, "cost must not be negative")
		}
		lot.ShipmentCost = valid.Float64(req.ShipmentCost)
	}
	if req.PurchaseDate != nil {
		lot.PurchaseDate = valid.DayTime(req.PurchaseDate)
	}
	lot.UpdaterID = req.UserID

	updated, err := s.repo.UpdateCostLot(ctx, lot, nil)
	if err != nil {
		log.WithError(err).Error("error_500: Error when call UpdateCostLot in UpdateCostLot")
		return res, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	desc := utils.ACTION_UPDATE_COST_LOT + " in UpdateCostLot func - CostLotService"
	history, _ := utils.PackHistoryModel(context.Background(), req.UserID, req.UserID.String(), updated.ID, utils.TABLE_COST_LOT, utils.ACTION_UPDATE_COST_LOT, desc, updated, req)
	s.historyService.LogHistory(context.Background(), history)

	return model.CostLotDetailResponse{CostLot: updated, TotalCost: LotTotalCost(updated)}, nil
}

func (s *CostLotService) DeleteCostLot(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	log := logger.WithCtx(ctx, "CostLotService.DeleteCostLot").WithField("id", id)

	lot, err := s.repo.GetOneCostLot(ctx, id.String(), nil)
	if err != nil {
		log.WithError(err).Error("Error when call GetOneCostLot in DeleteCostLot")
		return err
	}

	if err = s.repo.DeleteCostLot(ctx, id.String(), nil); err != nil {
		log.WithError(err).Error("error_500: Error when call DeleteCostLot in DeleteCostLot")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	desc := utils.ACTION_DELETE_COST_LOT + " in DeleteCostLot func - CostLotService"
	history, _ := utils.PackHistoryModel(context.Background(), userID, userID.String(), lot.ID, utils.TABLE_COST_LOT, utils.ACTION_DELETE_COST_LOT, desc, lot, nil)
	s.historyService.LogHistory(context.Background(), history)

	return nil
}

func (s *CostLotService) GetListCostLot(ctx context.Context, req model.CostLotParam) (res model.ListCostLotResponse, err error) {
	log := logger.WithCtx(ctx, "CostLotService.GetListCostLot").WithField("req", req)

	res, err = s.repo.GetListCostLot(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("Fail to GetListCostLot")
		return res, err
	}

	return res, nil
}
