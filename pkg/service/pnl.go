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
)

type PnlService struct {
	repo   repo.PGInterface
	profit ProfitServiceInterface
}

func NewPnlService(repo repo.PGInterface, profit ProfitServiceInterface) PnlServiceInterface {
	return &PnlService{repo: repo, profit: profit}
}

type PnlServiceInterface interface {
	GetPnlReport(ctx context.Context, req model.PnlRequest) (res model.PnlReportResponse, err error)
}

type pnlWindow struct {
	label string
	start time.Time
	end   time.Time
}

// pnlWindows is the report ladder: the running month to date first, then the
// twelve preceding full calendar months, newest first.
func pnlWindows(now time.Time) []pnlWindow {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windows := make([]pnlWindow, 0, utils.PNL_TRAILING_MONTHS+1)
	windows = append(windows, pnlWindow{label: first.Format("2006-01"), start: first, end: now})
	for i := 1; i <= utils.PNL_TRAILING_MONTHS; i++ {
		monthStart := first.AddDate(0, -i, 0)
		windows = append(windows, pnlWindow{
			label: monthStart.Format("2006-01"),
			start: monthStart,
			end:   monthStart.AddDate(0, 1, -1),
		})
	}
	return windows
}

type pnlColumn struct {
	summary       model.ProfitSummaryResponse
	fees          map[string]float64
	ads           map[string]float64
	refundDebits  float64
	refundCredits float64
}

func (s *PnlService) GetPnlReport(ctx context.Context, req model.PnlRequest) (res model.PnlReportResponse, err error) {
	log := logger.WithCtx(ctx, "PnlService.GetPnlReport").WithField("req", req)

	if valid.String(req.AccountID) == "" {
		return res, ginext.NewError(http.StatusBadRequest, "account_id is required")
	}
	if _, err := uuid.Parse(valid.String(req.AccountID)); err != nil {
		return res, ginext.NewError(http.StatusBadRequest, "account_id is invalid")
	}

	windows := pnlWindows(time.Now())
	columns := make([]pnlColumn, len(windows))

	// One goroutine per report column, each column is an independent window.
	eg := errgroup.Group{}
	for i := range windows {
		i := i
		eg.Go(func() error {
			column, err := s.buildColumn(ctx, req, windows[i])
			if err != nil {
				return err
			}
			columns[i] = column
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("Build report column error in GetPnlReport")
		return res, err
	}

	res.Periods = make([]string, len(windows))
	for i, w := range windows {
		res.Periods[i] = w.label
	}
	res.Rows = s.buildRows(windows, columns)

	return res, nil
}

func (s *PnlService) buildColumn(ctx context.Context, req model.PnlRequest, window pnlWindow) (pnlColumn, error) {
	filter := model.ProfitFilterParam{
		UserRole:      req.UserRole,
		UserCallAPI:   req.UserCallAPI,
		AccountID:     req.AccountID,
		MarketplaceID: req.MarketplaceID,
		StartDate:     valid.DayTimePointer(utils.BeginOfDay(window.start)),
		EndDate:       valid.DayTimePointer(utils.EndOfDay(window.end)),
	}

	column := pnlColumn{
		fees: map[string]float64{},
		ads:  map[string]float64{},
	}

	summary, err := s.profit.OverviewProfit(ctx, filter)
	if err != nil {
		return column, err
	}
	column.summary = summary

	fees, err := s.repo.GetFeeFacts(ctx, filter, nil)
	if err != nil {
		return column, err
	}
	for _, fee := range fees {
		column.fees[utils.FeeCategoryFromType(fee.FeeType)] += fee.Amount
	}

	refunds, err := s.repo.GetRefundFacts(ctx, filter, nil)
	if err != nil {
		return column, err
	}
	for _, refund := range refunds {
		if refund.Amount < 0 {
			column.refundCredits += refund.Amount
			continue
		}
		column.refundDebits += refund.Amount
	}

	ads, err := s.repo.GetAdSpendFacts(ctx, filter, nil)
	if err != nil {
		return column, err
	}
	for _, ad := range ads {
		column.ads[utils.AdChannelFromCampaign(ad.CampaignName)] += ad.Spend
	}

	return column, nil
}

func (s *PnlService) buildRows(windows []pnlWindow, columns []pnlColumn) []model.PnlRow {
	row := func(parameter string, summable bool, value func(pnlColumn) float64, children ...model.PnlRow) model.PnlRow {
		r := model.PnlRow{
			Parameter:    parameter,
			IsExpandable: len(children) > 0,
			Periods:      make([]model.PnlPeriodValue, len(windows)),
			Children:     children,
		}
		var total float64
		for i, c := range columns {
			v := utils.Round2(value(c))
			r.Periods[i] = model.PnlPeriodValue{Period: windows[i].label, Value: v}
			total += value(c)
		}
		// Ratio rows are not summable across periods, their total stays zero.
		if summable {
			r.Total = utils.Round2(total)
		}
		return r
	}

	acos := func(c pnlColumn) float64 {
		if c.summary.Revenue <= 0 {
			return 0
		}
		return c.summary.Advertising / c.summary.Revenue * 100
	}

	return []model.PnlRow{
		row("Sales", true, func(c pnlColumn) float64 { return c.summary.Revenue }),
		row("Units sold", true, func(c pnlColumn) float64 { return c.summary.UnitsSold }),
		row("Refunds", true, func(c pnlColumn) float64 { return c.summary.Refunds },
			row("Refunded amount", true, func(c pnlColumn) float64 { return c.refundDebits }),
			row("Refund reimbursements", true, func(c pnlColumn) float64 { return c.refundCredits }),
		),
		row("Cost of goods sold", true, func(c pnlColumn) float64 { return c.summary.Cogs }),
		row("Amazon fees", true, func(c pnlColumn) float64 { return c.summary.Fees },
			row("FBA fees", true, func(c pnlColumn) float64 { return c.fees[utils.FEE_CATEGORY_FBA] }),
			row("Referral fees", true, func(c pnlColumn) float64 { return c.fees[utils.FEE_CATEGORY_REFERRAL] }),
			row("Storage fees", true, func(c pnlColumn) float64 { return c.fees[utils.FEE_CATEGORY_STORAGE] }),
			row("Other fees", true, func(c pnlColumn) float64 { return c.fees[utils.FEE_CATEGORY_OTHER] }),
		),
		row("Returns cost", true, func(c pnlColumn) float64 { return c.summary.ReturnsCost }),
		row("Gross profit", true, func(c pnlColumn) float64 { return c.summary.GrossProfit }),
		row("Advertising", true, func(c pnlColumn) float64 { return c.summary.Advertising },
			row("Sponsored products", true, func(c pnlColumn) float64 { return c.ads[utils.AD_CHANNEL_SPONSORED_PRODUCTS] }),
			row("Sponsored brands", true, func(c pnlColumn) float64 { return c.ads[utils.AD_CHANNEL_SPONSORED_BRANDS] }),
			row("Sponsored brands video", true, func(c pnlColumn) float64 { return c.ads[utils.AD_CHANNEL_SPONSORED_BRAND_VIDEO] }),
			row("Sponsored display", true, func(c pnlColumn) float64 { return c.ads[utils.AD_CHANNEL_SPONSORED_DISPLAY] }),
		),
		row("ACOS", false, acos),
		row("Expenses", true, func(c pnlColumn) float64 { return c.summary.Expenses }),
		row("Net profit", true, func(c pnlColumn) float64 { return c.summary.NetProfit }),
		row("Gross margin", false, func(c pnlColumn) float64 { return c.summary.GrossMargin }),
		row("Net margin", false, func(c pnlColumn) float64 { return c.summary.NetMargin }),
	}
}
