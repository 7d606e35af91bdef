package service

import (
	"context"
	"net/http"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/repo"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type KpiService struct {
	repo repo.PGInterface
}

func NewKpiService(repo repo.PGInterface) KpiServiceInterface {
	return &KpiService{repo: repo}
}

type KpiServiceInterface interface {
	RecalculateKpi(ctx context.Context, req model.RecalculateKpiRequest) (res model.RecalculateKpiResponse, err error)
	GetListKpiSummary(ctx context.Context, req model.KpiParam) (res model.ListKpiSummaryResponse, err error)
}

// RecalculateKpi rebuilds the derived stock and velocity rows for every SKU of
// the account. Upserts run per SKU, a failed SKU does not hold the others back
// and the operation is safe to run repeatedly.
func (s *KpiService) RecalculateKpi(ctx context.Context, req model.RecalculateKpiRequest) (res model.RecalculateKpiResponse, err error) {
	log := logger.WithCtx(ctx, "KpiService.RecalculateKpi").WithField("req", req)

	accountID, err := uuid.Parse(valid.String(req.AccountID))
	if err != nil {
		return res, ginext.NewError(http.StatusBadRequest, "account_id is invalid")
	}

	asOf := time.Now()
	inputs, err := s.repo.GetSkuKpiInputs(ctx, accountID, asOf, nil)
	if err != nil {
		log.WithError(err).Error("error_500: Error when call GetSkuKpiInputs in RecalculateKpi")
		return res, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	eg := errgroup.Group{}
	for _, input := range inputs {
		input := input
		eg.Go(func() error {
			row := buildKpiRow(accountID, input, asOf)
			row.CreatorID = req.UserCallAPI
			row.UpdaterID = req.UserCallAPI
			return s.repo.UpsertKpiSummary(ctx, &row, nil)
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("error_500: Error when call UpsertKpiSummary in RecalculateKpi")
		return res, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return model.RecalculateKpiResponse{
		AccountID: accountID,
		SkuCount:  len(inputs),
		AsOf:      asOf,
	}, nil
}

func buildKpiRow(accountID uuid.UUID, input model.SkuKpiInput, asOf time.Time) model.KpiSummary {
	velocity := input.UnitsSold30d / 30
	var daysOfStock float64
	if velocity > 0 {
		daysOfStock = input.StockOnHand / velocity
	}
	return model.KpiSummary{
		AccountID:     accountID,
		Sku:           input.Sku,
		StockOnHand:   input.StockOnHand,
		UnitsSold30d:  input.UnitsSold30d,
		Revenue30d:    utils.Round2(input.Revenue30d),
		SalesVelocity: utils.Round2(velocity),
		DaysOfStock:   utils.Round2(daysOfStock),
		AsOfDate:      datatypes.Date(asOf),
	}
}

func (s *KpiService) GetListKpiSummary(ctx context.Context, req model.KpiParam) (res model.ListKpiSummaryResponse, err error) {
	log := logger.WithCtx(ctx, "KpiService.GetListKpiSummary").WithField("req", req)

	res, err = s.repo.GetListKpiSummary(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("Fail to GetListKpiSummary")
		return res, err
	}

	return res, nil
}
