package repo

import (
	"context"
	"net/http"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSkuKpiInputs reads stock on hand (lot quantity minus lifetime sold) and
// trailing 30 day sales per SKU in one pass.
func (r *RepoPG) GetSkuKpiInputs(ctx context.Context, accountID uuid.UUID, asOf time.Time, tx *gorm.DB) (rs []model.SkuKpiInput, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetSkuKpiInputs")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := `
		SELECT l.sku,
		       COALESCE(l.lot_quantity, 0) - COALESCE(s.sold_total, 0) AS stock_on_hand,
		       COALESCE(s30.units_sold_30d, 0) AS units_sold_30d,
		       COALESCE(s30.revenue_30d, 0) AS revenue_30d
		FROM (SELECT sku, SUM(quantity) AS lot_quantity
		      FROM cost_lots
		      WHERE account_id = ? AND deleted_at IS NULL
		      GROUP BY sku) l
		LEFT JOIN (SELECT sku, SUM(quantity) AS sold_total
		           FROM sales_facts
		           WHERE account_id = ? AND deleted_at IS NULL
		           GROUP BY sku) s ON s.sku = l.sku
		LEFT JOIN (SELECT sku, SUM(quantity) AS units_sold_30d, SUM(line_revenue) AS revenue_30d
		           FROM sales_facts
		           WHERE account_id = ? AND deleted_at IS NULL AND order_date >= ?
		           GROUP BY sku) s30 ON s30.sku = l.sku
		`

	if err = tx.Raw(query, accountID, accountID, accountID, asOf.AddDate(0, 0, -30)).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get sku kpi inputs in GetSkuKpiInputs - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) UpsertKpiSummary(ctx context.Context, row *model.KpiSummary, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.UpsertKpiSummary")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stock_on_hand", "units_sold_30d", "revenue_30d", "sales_velocity", "days_of_stock", "as_of_date", "updated_at",
		}),
	}).Create(&row).Error; err != nil {
		log.WithError(err).WithField("sku", row.Sku).Error("error_500: upsert kpi summary in UpsertKpiSummary - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetListKpiSummary(ctx context.Context, req model.KpiParam, tx *gorm.DB) (rs model.ListKpiSummaryResponse, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListKpiSummary")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := tx.Model(&model.KpiSummary{}).Where("account_id = ?", valid.String(req.AccountID))
	countQuery := "SELECT COUNT(*) AS count FROM kpi_summary WHERE deleted_at IS NULL AND account_id = '" + valid.String(req.AccountID) + "'"
	if req.Sku != nil {
		query = query.Where("sku = ?", valid.String(req.Sku))
		countQuery += " AND sku = '" + valid.String(req.Sku) + "'"
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	sort := "days_of_stock ASC"
	if req.Sort != "" {
		sort = req.Sort
	}

	if err = query.Order(sort).Offset(r.GetOffset(page, pageSize)).Limit(pageSize).Find(&rs.Data).Error; err != nil {
		log.WithError(err).Error("error_500: get list kpi summary in GetListKpiSummary - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	if rs.Meta, err = r.GetPaginationInfo(countQuery, tx, 0, page, pageSize); err != nil {
		log.WithError(err).Error("error_500: get pagination in GetListKpiSummary - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
