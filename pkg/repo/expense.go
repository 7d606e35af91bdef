package repo

import (
	"context"
	"fmt"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

func (r *RepoPG) CreateExpense(ctx context.Context, expense *model.ExpenseFact, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateExpense")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&expense).Error; err != nil {
		log.WithError(err).Error("error_500: create expense in CreateExpense - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneExpense(ctx context.Context, id string, tx *gorm.DB) (rs model.ExpenseFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneExpense")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Model(&model.ExpenseFact{}).Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneExpense - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get one expense in GetOneExpense - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) DeleteExpense(ctx context.Context, id string, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteExpense")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Where("id = ?", id).Delete(&model.ExpenseFact{}).Error; err != nil {
		log.WithError(err).Error("error_500: delete expense in DeleteExpense - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetListExpense(ctx context.Context, req model.ExpenseParam, tx *gorm.DB) (rs model.ListExpenseResponse, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListExpense")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := tx.Model(&model.ExpenseFact{}).Where("account_id = ?", valid.String(req.AccountID))
	countQuery := "SELECT COUNT(*) AS count FROM expenses WHERE deleted_at IS NULL AND account_id = '" + valid.String(req.AccountID) + "'"
	if req.Category != nil {
		query = query.Where("category = ?", valid.String(req.Category))
		countQuery += " AND category = '" + valid.String(req.Category) + "'"
	}
	if !valid.DayTime(req.DateFrom).IsZero() && !valid.DayTime(req.DateTo).IsZero() {
		query = query.Where("expense_date BETWEEN ? AND ?", valid.DayTime(req.DateFrom), utils.EndOfDay(valid.DayTime(req.DateTo)))
		countQuery += fmt.Sprintf(" AND expense_date BETWEEN '%s' AND '%s'",
			valid.DayTime(req.DateFrom).Format(utils.TIME_FORMAT_FOR_QUERRY),
			utils.EndOfDay(valid.DayTime(req.DateTo)).Format(utils.TIME_FORMAT_FOR_QUERRY))
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	sort := "expense_date DESC"
	if req.Sort != "" {
		sort = req.Sort
	}

	if err = query.Order(sort).Offset(r.GetOffset(page, pageSize)).Limit(pageSize).Find(&rs.Data).Error; err != nil {
		log.WithError(err).Error("error_500: get list expense in GetListExpense - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	if rs.Meta, err = r.GetPaginationInfo(countQuery, tx, 0, page, pageSize); err != nil {
		log.WithError(err).Error("error_500: get pagination in GetListExpense - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
