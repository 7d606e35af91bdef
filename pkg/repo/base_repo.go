package repo

import (
	"context"
	"math"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gorm.io/gorm"
)

const (
	generalQueryTimeout = 60 * time.Second
	defaultPageSize     = 30
	maxPageSize         = 1000
)

func NewPGRepo(db *gorm.DB) PGInterface {
	return &RepoPG{DB: db}
}

type PGInterface interface {
	// DB
	DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc)

	// Financial facts (read models)
	GetSalesFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.SalesFact, error)
	GetFeeFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.FeeFact, error)
	GetRefundFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.RefundFact, error)
	GetReturnFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.ReturnFact, error)
	GetAdSpendFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.AdSpendFact, error)
	GetExpenseFacts(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) ([]model.ExpenseFact, error)
	GetRevenueTotal(ctx context.Context, req model.ProfitFilterParam, tx *gorm.DB) (float64, error)

	// Cost lots
	CreateCostLot(ctx context.Context, lot *model.CostLot, tx *gorm.DB) error
	GetOneCostLot(ctx context.Context, id string, tx *gorm.DB) (model.CostLot, error)
	UpdateCostLot(ctx context.Context, lot model.CostLot, tx *gorm.DB) (model.CostLot, error)
	DeleteCostLot(ctx context.Context, id string, tx *gorm.DB) error
	GetListCostLot(ctx context.Context, req model.CostLotParam, tx *gorm.DB) (model.ListCostLotResponse, error)
	GetCostLotsForCOGS(ctx context.Context, accountID uuid.UUID, sku string, tx *gorm.DB) ([]model.CostLot, error)

	// Expenses
	CreateExpense(ctx context.Context, expense *model.ExpenseFact, tx *gorm.DB) error
	GetOneExpense(ctx context.Context, id string, tx *gorm.DB) (model.ExpenseFact, error)
	DeleteExpense(ctx context.Context, id string, tx *gorm.DB) error
	GetListExpense(ctx context.Context, req model.ExpenseParam, tx *gorm.DB) (model.ListExpenseResponse, error)

	// KPI summary
	GetSkuKpiInputs(ctx context.Context, accountID uuid.UUID, asOf time.Time, tx *gorm.DB) ([]model.SkuKpiInput, error)
	UpsertKpiSummary(ctx context.Context, row *model.KpiSummary, tx *gorm.DB) error
	GetListKpiSummary(ctx context.Context, req model.KpiParam, tx *gorm.DB) (model.ListKpiSummaryResponse, error)

	// History
	LogHistory(ctx context.Context, history model.History, tx *gorm.DB) (model.History, error)
	DeleteLogHistory(ctx context.Context, tx *gorm.DB) error
}

type RepoPG struct {
	DB    *gorm.DB
	debug bool
}

func (r *RepoPG) GetRepo() *gorm.DB {
	return r.DB
}

func (r *RepoPG) DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, generalQueryTimeout)
	return r.DB.WithContext(ctx), cancel
}

func (r *RepoPG) GetPage(page int) int {
	if page == 0 {
		return 1
	}
	return page
}

func (r *RepoPG) GetOffset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

func (r *RepoPG) GetPageSize(pageSize int) int {
	if pageSize == 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

func (r *RepoPG) GetTotalPages(totalRows, pageSize int) int {
	return int(math.Ceil(float64(totalRows) / float64(pageSize)))
}

func (r *RepoPG) GetPaginationInfo(query string, tx *gorm.DB, totalRow, page, pageSize int) (rs ginext.BodyMeta, err error) {
	tm := struct {
		Count int `json:"count"`
	}{}
	if query != "" {
		if err = tx.Raw(query).Scan(&tm).Error; err != nil {
			return nil, err
		}
		totalRow = tm.Count
	}

	return ginext.BodyMeta{
		"page":        page,
		"page_size":   pageSize,
		"total_pages": r.GetTotalPages(totalRow, pageSize),
		"total_rows":  totalRow,
	}, nil
}
