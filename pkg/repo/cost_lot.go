package repo

import (
	"context"
	"fmt"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) CreateCostLot(ctx context.Context, lot *model.CostLot, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateCostLot")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&lot).Error; err != nil {
		log.WithError(err).Error("error_500: create cost lot in CreateCostLot - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneCostLot(ctx context.Context, id string, tx *gorm.DB) (rs model.CostLot, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneCostLot")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Model(&model.CostLot{}).Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneCostLot - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get one cost lot in GetOneCostLot - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) UpdateCostLot(ctx context.Context, lot model.CostLot, tx *gorm.DB) (rs model.CostLot, err error) {
	log := logger.WithCtx(ctx, "RepoPG.UpdateCostLot")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Model(&model.CostLot{}).Where("id = ?", lot.ID).Save(&lot).Error; err != nil {
		log.WithError(err).Error("error_500: Error when UpdateCostLot - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return lot, nil
}

func (r *RepoPG) DeleteCostLot(ctx context.Context, id string, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteCostLot")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Where("id = ?", id).Delete(&model.CostLot{}).Error; err != nil {
		log.WithError(err).Error("error_500: delete cost lot in DeleteCostLot - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetListCostLot(ctx context.Context, req model.CostLotParam, tx *gorm.DB) (rs model.ListCostLotResponse, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListCostLot")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := tx.Model(&model.CostLot{}).Where("account_id = ?", valid.String(req.AccountID))
	countQuery := "SELECT COUNT(*) AS count FROM cost_lots WHERE deleted_at IS NULL AND account_id = '" + valid.String(req.AccountID) + "'"
	if req.Sku != nil {
		query = query.Where("sku = ?", valid.String(req.Sku))
		countQuery += " AND sku = '" + valid.String(req.Sku) + "'"
	}
	if !valid.DayTime(req.DateFrom).IsZero() && !valid.DayTime(req.DateTo).IsZero() {
		query = query.Where("purchase_date BETWEEN ? AND ?", valid.DayTime(req.DateFrom), utils.EndOfDay(valid.DayTime(req.DateTo)))
		countQuery += fmt.Sprintf(" AND purchase_date BETWEEN '%s' AND '%s'",
			valid.DayTime(req.DateFrom).Format(utils.TIME_FORMAT_FOR_QUERRY),
			utils.EndOfDay(valid.DayTime(req.DateTo)).Format(utils.TIME_FORMAT_FOR_QUERRY))
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	sort := "purchase_date ASC"
	if req.Sort != "" {
		sort = req.Sort
	}

	var lots []model.CostLot
	if err = query.Order(sort).Offset(r.GetOffset(page, pageSize)).Limit(pageSize).Find(&lots).Error; err != nil {
		log.WithError(err).Error("error_500: get list cost lot in GetListCostLot - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	for _, lot := range lots {
		rs.Data = append(rs.Data, model.CostLotDetailResponse{
			CostLot:   lot,
			TotalCost: utils.Round2(lot.Quantity*lot.UnitCost + lot.ShipmentCost),
		})
	}

	if rs.Meta, err = r.GetPaginationInfo(countQuery, tx, 0, page, pageSize); err != nil {
		log.WithError(err).Error("error_500: get pagination in GetListCostLot - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// GetCostLotsForCOGS loads the full ordered ledger for FIFO consumption.
// Empty sku loads every lot of the account.
func (r *RepoPG) GetCostLotsForCOGS(ctx context.Context, accountID uuid.UUID, sku string, tx *gorm.DB) (rs []model.CostLot, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetCostLotsForCOGS")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := tx.Model(&model.CostLot{}).Where("account_id = ?", accountID)
	if sku != "" {
		query = query.Where("sku = ?", sku)
	}

	if err = query.Order("purchase_date ASC").Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get cost lots in GetCostLotsForCOGS - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
