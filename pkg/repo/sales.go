package repo

import (
	"context"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
)

// Fact readers. The service layer resolves the filter window before calling,
// StartDate and EndDate are always set here.

func (r *RepoPG) GetSalesFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.SalesFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetSalesFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.SalesFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("order_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.MarketplaceID != nil {
		tx = tx.Where("marketplace_id = ?", valid.String(req.MarketplaceID))
	}
	if req.Sku != nil {
		tx = tx.Where("sku = ?", valid.String(req.Sku))
	}

	if err = tx.Order("order_date ASC").Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get sales facts in GetSalesFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetFeeFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.FeeFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetFeeFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.FeeFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("fee_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.MarketplaceID != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM sales_facts s WHERE s.order_id = fee_facts.order_id AND s.marketplace_id = ? AND s.deleted_at IS NULL)",
			valid.String(req.MarketplaceID))
	}
	if req.Sku != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM sales_facts s WHERE s.order_id = fee_facts.order_id AND s.sku = ? AND s.deleted_at IS NULL)",
			valid.String(req.Sku))
	}

	if err = tx.Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get fee facts in GetFeeFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetRefundFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.RefundFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetRefundFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.RefundFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("refund_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.MarketplaceID != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM sales_facts s WHERE s.order_id = refund_facts.order_id AND s.marketplace_id = ? AND s.deleted_at IS NULL)",
			valid.String(req.MarketplaceID))
	}
	if req.Sku != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM sales_facts s WHERE s.order_id = refund_facts.order_id AND s.sku = ? AND s.deleted_at IS NULL)",
			valid.String(req.Sku))
	}

	if err = tx.Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get refund facts in GetRefundFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetReturnFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.ReturnFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetReturnFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.ReturnFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("return_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.Sku != nil {
		tx = tx.Where("sku = ?", valid.String(req.Sku))
	}
	if req.MarketplaceID != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM sales_facts s WHERE s.order_id = return_facts.order_id AND s.marketplace_id = ? AND s.deleted_at IS NULL)",
			valid.String(req.MarketplaceID))
	}

	if err = tx.Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get return facts in GetReturnFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetAdSpendFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.AdSpendFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetAdSpendFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.AdSpendFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("spend_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.MarketplaceID != nil {
		tx = tx.Where("marketplace_id = ?", valid.String(req.MarketplaceID))
	}

	if err = tx.Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get ad spend facts in GetAdSpendFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetExpenseFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (rs []model.ExpenseFact, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetExpenseFacts")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.ExpenseFact{}).
		Where("account_id = ?", valid.String(req.AccountID)).
		Where("expense_date BETWEEN ? AND ?", valid.DayTime(req.StartDate), valid.DayTime(req.EndDate))
	if req.MarketplaceID != nil {
		tx = tx.Where("(marketplace_id = ? OR marketplace_id = '')", valid.String(req.MarketplaceID))
	}

	if err = tx.Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get expense facts in GetExpenseFacts - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// GetRevenueTotal sums window revenue without the SKU filter. Used as the
// denominator of revenue proportional pools when a single SKU is requested.
func (r *RepoPG) GetRevenueTotal(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (float64, error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT COALESCE(SUM(line_revenue), 0) AS sum_revenue " +
		" FROM sales_facts " +
		" WHERE account_id = ? " +
		"  AND deleted_at IS NULL " +
		"  AND order_date BETWEEN ? AND ? "

	var data struct {
		SumRevenue float64 `json:"sum_revenue"`
	}
	if req.MarketplaceID != nil {
		query += " AND marketplace_id = ? "
		if err := tx.Raw(query, valid.String(req.AccountID), valid.DayTime(req.StartDate), valid.DayTime(req.EndDate), valid.String(req.MarketplaceID)).Scan(&data).Error; err != nil {
			return 0, err
		}
	} else {
		if err := tx.Raw(query, valid.String(req.AccountID), valid.DayTime(req.StartDate), valid.DayTime(req.EndDate)).Scan(&data).Error; err != nil {
			return 0, err
		}
	}

	return data.SumRevenue, nil
}
