package service

import (
	"context"
	"encoding/json"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/repo"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type ExpenseService struct {
	repo           repo.PGInterface
	historyService HistoryServiceInterface
}

func NewExpenseService(repo repo.PGInterface, historyService HistoryServiceInterface) ExpenseServiceInterface {
	return &ExpenseService{repo: repo, historyService: historyService}
}

type ExpenseServiceInterface interface {
	CreateExpense(ctx context.Context, req model.ExpenseBody) (res model.ExpenseFact, err error)
	GetOneExpense(ctx context.Context, id uuid.UUID) (res model.ExpenseFact, err error)
	DeleteExpense(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetListExpense(ctx context.Context, req model.ExpenseParam) (res model.ListExpenseResponse, err error)
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req model.ExpenseBody) (res model.ExpenseFact, err error) {
	log := logger.WithCtx(ctx, "ExpenseService.CreateExpense").WithField("req", req)

	if valid.Float64(req.Amount) <= 0 {
		return res, ginext.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	// Explicit percentages above 100 would attribute more than the expense.
	var pctSum float64
	for _, a := range req.AllocatedProducts {
		if a.Sku == "" {
			return res, ginext.NewError(http.StatusBadRequest, "allocated product sku is required")
		}
		if a.Percentage < 0 {
			return res, ginext.NewError(http.StatusBadRequest, "allocation percentage must not be negative")
		}
		pctSum += a.Percentage
	}
	if pctSum > 100 {
		return res, ginext.NewError(http.StatusBadRequest, "allocation percentages must not exceed 100")
	}

	expense := &model.ExpenseFact{
		AccountID:     valid.UUID(req.AccountID),
		MarketplaceID: req.MarketplaceID,
		Category:      req.Category,
		Amount:        valid.Float64(req.Amount),
		ExpenseDate:   valid.DayTime(req.ExpenseDate),
	}
	if len(req.AllocatedProducts) > 0 {
		raw, err := json.Marshal(req.AllocatedProducts)
		if err != nil {
			log.WithError(err).Error("error_400: Cannot marshal allocated_products in CreateExpense")
			return res, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		expense.AllocatedProducts = postgres.Jsonb{RawMessage: raw}
	}
	expense.CreatorID = req.UserID
	expense.UpdaterID = req.UserID

	if err = s.repo.CreateExpense(ctx, expense, nil); err != nil {
		log.WithError(err).Error("error_500: Error when call CreateExpense in CreateExpense")
		return res, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	desc := utils.ACTION_CREATE_EXPENSE + " in CreateExpense func - ExpenseService"
	history, _ := utils.PackHistoryModel(context.Background(), req.UserID, req.UserID.String(), expense.ID, utils.TABLE_EXPENSE, utils.ACTION_CREATE_EXPENSE, desc, expense, req)
	s.historyService.LogHistory(context.Background(), history)

	return *expense, nil
}

func (s *ExpenseService) GetOneExpense(ctx context.Context, id uuid.UUID) (res model.ExpenseFact, err error) {
	log := logger.WithCtx(ctx, "ExpenseService.GetOneExpense").WithField("id", id)

	res, err = s.repo.GetOneExpense(ctx, id.String(), nil)
	if err != nil {
		log.WithError(err).Error("Error when call GetOneExpense in GetOneExpense")
		return res, err
	}

	return res, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	log := logger.WithCtx(ctx, "ExpenseService.DeleteExpense").WithField("id", id)

	expense, err := s.repo.GetOneExpense(ctx, id.String(), nil)
	if err != nil {
		log.WithError(err).Error("Error when call GetOneExpense in DeleteExpense")
		return err
	}

	if err = s.repo.DeleteExpense(ctx, id.String(), nil); err != nil {
		log.WithError(err).Error("error_500: Error when call DeleteExpense in DeleteExpense")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	desc := utils.ACTION_DELETE_EXPENSE + " in DeleteExpense func - ExpenseService"
	history, _ := utils.PackHistoryModel(context.Background(), userID, userID.String(), expense.ID, utils.TABLE_EXPENSE, utils.ACTION_DELETE_EXPENSE, desc, expense, nil)
	s.historyService.LogHistory(context.Background(), history)

	return nil
}

func (s *ExpenseService) GetListExpense(ctx context.Context, req model.ExpenseParam) (res model.ListExpenseResponse, err error) {
	log := logger.WithCtx(ctx, "ExpenseService.GetListExpense").WithField("req", req)

	res, err = s.repo.GetListExpense(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("Fail to GetListExpense")
		return res, err
	}

	return res, nil
}
