package service

import (
	"context"
	"net/http"
	"sort"
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

type ProfitService struct {
	repo repo.PGInterface
}

func NewProfitService(repo repo.PGInterface) ProfitServiceInterface {
	return &ProfitService{repo: repo}
}

type ProfitServiceInterface interface {
	OverviewProfit(ctx context.Context, req model.ProfitFilterParam) (res model.ProfitSummaryResponse, err error)
	GetProfitBreakdown(ctx context.Context, req model.ProfitFilterParam) (res model.ListProfitBreakdownResponse, err error)
}

// profitFacts is the consistent snapshot one request computes over. All reads
// complete before aggregation starts, nothing here mutates afterwards.
type profitFacts struct {
	sales        []model.SalesFact
	fees         []model.FeeFact
	refunds      []model.RefundFact
	returns      []model.ReturnFact
	ads          []model.AdSpendFact
	expenses     []model.ExpenseFact
	lots         []model.CostLot
	revenueTotal float64
}

type groupAgg struct {
	revenue     float64
	units       float64
	fees        float64
	refunds     float64
	returnsCost float64
	expenses    float64
	advertising float64
	cogs        float64
	uncosted    float64
	skuQty      map[string]float64
}

func (s *ProfitService) OverviewProfit(ctx context.Context, req model.ProfitFilterParam) (res model.ProfitSummaryResponse, err error) {
	log := logger.WithCtx(ctx, "ProfitService.OverviewProfit").WithField("req", req)

	req.Dimension = utils.DIMENSION_NONE
	req, err = normalizeProfitFilter(req)
	if err != nil {
		return res, err
	}

	facts, err := s.fetchFacts(ctx, req)
	if err != nil {
		log.WithError(err).Error("Fetch facts error in OverviewProfit")
		return res, err
	}

	rows := aggregate(facts, req)
	if len(rows) == 0 {
		return res, nil
	}

	return rows[0].ProfitSummaryResponse, nil
}

func (s *ProfitService) GetProfitBreakdown(ctx context.Context, req model.ProfitFilterParam) (res model.ListProfitBreakdownResponse, err error) {
	log := logger.WithCtx(ctx, "ProfitService.GetProfitBreakdown").WithField("req", req)

	req, err = normalizeProfitFilter(req)
	if err != nil {
		return res, err
	}

	facts, err := s.fetchFacts(ctx, req)
	if err != nil {
		log.WithError(err).Error("Fetch facts error in GetProfitBreakdown")
		return res, err
	}

	res.Data = aggregate(facts, req)
	res.Meta = map[string]interface{}{
		"dimension":  req.Dimension,
		"start_date": valid.DayTime(req.StartDate).Format(utils.DATE_FORMAT),
		"end_date":   valid.DayTime(req.EndDate).Format(utils.DATE_FORMAT),
		"count":      len(res.Data),
	}

	return res, nil
}

// normalizeProfitFilter validates enums and resolves the filter window:
// missing dates default to a trailing 30 day window, the end date is pushed
// to 23:59:59.999 so the last calendar day is inclusive.
func normalizeProfitFilter(req model.ProfitFilterParam) (model.ProfitFilterParam, error) {
	if valid.String(req.AccountID) == "" {
		return req, ginext.NewError(http.StatusBadRequest, "account_id is required")
	}
	if _, err := uuid.Parse(valid.String(req.AccountID)); err != nil {
		return req, ginext.NewError(http.StatusBadRequest, "account_id is invalid")
	}

	if req.Dimension == "" {
		req.Dimension = utils.DIMENSION_NONE
	}
	if !utils.SupportedDimension(req.Dimension) {
		return req, ginext.NewError(http.StatusBadRequest, "unsupported dimension: "+req.Dimension)
	}

	if req.Period == "" {
		req.Period = utils.PERIOD_DAY
	}
	if !utils.SupportedPeriod(req.Period) {
		return req, ginext.NewError(http.StatusBadRequest, "unsupported period: "+req.Period)
	}

	end := time.Now()
	if req.EndDate != nil {
		end = *req.EndDate
	}
	start := end.AddDate(0, 0, -utils.DEFAULT_WINDOW_DAYS)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if start.After(end) {
		return req, ginext.NewError(http.StatusBadRequest, "start_date must not be after end_date")
	}
	req.StartDate = valid.DayTimePointer(utils.BeginOfDay(start))
	req.EndDate = valid.DayTimePointer(utils.EndOfDay(end))

	return req, nil
}

// fetchFacts loads the snapshot. The reads are independent and run concurrently,
// aggregation starts only after every read finished.
func (s *ProfitService) fetchFacts(ctx context.Context, req model.ProfitFilterParam) (*profitFacts, error) {
	accountID, err := uuid.Parse(valid.String(req.AccountID))
	if err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "account_id is invalid")
	}

	facts := &profitFacts{}
	eg := errgroup.Group{}
	eg.Go(func() (err error) {
		facts.sales, err = s.repo.GetSalesFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.fees, err = s.repo.GetFeeFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.refunds, err = s.repo.GetRefundFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.returns, err = s.repo.GetReturnFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.ads, err = s.repo.GetAdSpendFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.expenses, err = s.repo.GetExpenseFacts(ctx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.lots, err = s.repo.GetCostLotsForCOGS(ctx, accountID, valid.String(req.Sku), nil)
		return err
	})
	eg.Go(func() (err error) {
		facts.revenueTotal, err = s.repo.GetRevenueTotal(ctx, req, nil)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return facts, nil
}

// aggregate is the single pass pipeline: group facts by the requested
// dimension, attribute order level charges below order granularity by line
// revenue share, resolve COGS once per SKU and spread it per group at the
// effective rate so dimension rows always sum to the ungrouped total.
func aggregate(facts *profitFacts, req model.ProfitFilterParam) []model.ProfitBreakdownRow {
	dim := req.Dimension
	period := req.Period

	groups := map[string]*groupAgg{}
	group := func(key string) *groupAgg {
		g, ok := groups[key]
		if !ok {
			g = &groupAgg{skuQty: map[string]float64{}}
			groups[key] = g
		}
		return g
	}

	lineKey := func(line model.SalesFact) string {
		switch dim {
		case utils.DIMENSION_SKU:
			return line.Sku
		case utils.DIMENSION_MARKETPLACE:
			return line.MarketplaceID
		case utils.DIMENSION_COUNTRY:
			return utils.CountryFromMarketplace(line.MarketplaceID)
		case utils.DIMENSION_PERIOD:
			return PeriodKey(line.OrderDate, period)
		default:
			return ""
		}
	}

	// Pass 1: revenue, units and per-SKU quantity per group
	orderRevenue := map[string]float64{}
	orderLines := map[string][]model.SalesFact{}
	orderMp := map[string]string{}
	skuQty := map[string]float64{}
	skuRevenue := map[string]float64{}
	mpRevenue := map[string]float64{}
	for _, line := range facts.sales {
		g := group(lineKey(line))
		g.revenue += line.LineRevenue
		g.units += line.Quantity
		g.skuQty[line.Sku] += line.Quantity

		orderRevenue[line.OrderID] += line.LineRevenue
		orderLines[line.OrderID] = append(orderLines[line.OrderID], line)
		if _, ok := orderMp[line.OrderID]; !ok {
			orderMp[line.OrderID] = line.MarketplaceID
		}
		skuQty[line.Sku] += line.Quantity
		skuRevenue[line.Sku] += line.LineRevenue
		mpRevenue[line.MarketplaceID] += line.LineRevenue
	}

	// Pass 2: order level charges
	var unmatchedFees, unmatchedRefunds float64
	addCharge := func(orderID string, when time.Time, amount float64, add func(g *groupAgg, v float64), unmatched *float64) {
		switch dim {
		case utils.DIMENSION_NONE:
			add(group(""), amount)
		case utils.DIMENSION_PERIOD:
			add(group(PeriodKey(when, period)), amount)
		case utils.DIMENSION_SKU:
			lines := orderLines[orderID]
			if len(lines) == 0 {
				*unmatched += amount
				return
			}
			if orderRevenue[orderID] <= 0 {
				per := amount / float64(len(lines))
				for _, l := range lines {
					add(group(l.Sku), per)
				}
				return
			}
			for _, l := range lines {
				add(group(l.Sku), amount*l.LineRevenue/orderRevenue[orderID])
			}
		default: // marketplace, country
			mp, ok := orderMp[orderID]
			if !ok {
				*unmatched += amount
				return
			}
			key := mp
			if dim == utils.DIMENSION_COUNTRY {
				key = utils.CountryFromMarketplace(mp)
			}
			add(group(key), amount)
		}
	}
	addFee := func(g *groupAgg, v float64) { g.fees += v }
	addRefund := func(g *groupAgg, v float64) { g.refunds += v }
	for _, fee := range facts.fees {
		addCharge(fee.OrderID, fee.FeeDate, fee.Amount, addFee, &unmatchedFees)
	}
	for _, refund := range facts.refunds {
		addCharge(refund.OrderID, refund.RefundDate, refund.Amount, addRefund, &unmatchedRefunds)
	}

	// Pass 3: FIFO cost attribution, resolved once per SKU for the window
	lotsBySku := map[string][]model.CostLot{}
	for _, lot := range facts.lots {
		lotsBySku[lot.Sku] = append(lotsBySku[lot.Sku], lot)
	}
	skuCogs := map[string]float64{}
	skuUncosted := map[string]float64{}
	for sku, qty := range skuQty {
		skuCogs[sku], skuUncosted[sku] = ResolveCOGS(lotsBySku[sku], qty)
	}
	for _, g := range groups {
		for sku, qty := range g.skuQty {
			if skuQty[sku] <= 0 {
				continue
			}
			g.cogs += qty * skuCogs[sku] / skuQty[sku]
			g.uncosted += qty * skuUncosted[sku] / skuQty[sku]
		}
	}

	// Pass 4: physical returns cost
	var unmatchedReturns float64
	for _, ret := range facts.returns {
		cost := ret.RefundAmount + ret.FeeAmount
		if !ret.IsSellable {
			cost += ret.QuantityReturned * WeightedAvgUnitCost(lotsBySku[ret.Sku])
		}
		switch dim {
		case utils.DIMENSION_SKU:
			group(ret.Sku).returnsCost += cost
		case utils.DIMENSION_PERIOD:
			group(PeriodKey(ret.ReturnDate, period)).returnsCost += cost
		case utils.DIMENSION_MARKETPLACE, utils.DIMENSION_COUNTRY:
			mp, ok := orderMp[ret.OrderID]
			if !ok {
				unmatchedReturns += cost
				continue
			}
			key := mp
			if dim == utils.DIMENSION_COUNTRY {
				key = utils.CountryFromMarketplace(mp)
			}
			group(key).returnsCost += cost
		default:
			group("").returnsCost += cost
		}
	}

	// Pass 5: discretionary expenses and advertising
	totalRevenue := facts.revenueTotal
	switch dim {
	case utils.DIMENSION_SKU:
		alloc := AllocateExpensesBySku(facts.expenses, skuRevenue, totalRevenue)
		for sku, amount := range alloc {
			if req.Sku != nil && sku != valid.String(req.Sku) {
				continue
			}
			group(sku).expenses += amount
		}
		var adTotal float64
		for _, ad := range facts.ads {
			adTotal += ad.Spend
		}
		for sku, amount := range AllocateAmountByShare(adTotal, skuRevenue, totalRevenue) {
			group(sku).advertising += amount
		}
	case utils.DIMENSION_MARKETPLACE, utils.DIMENSION_COUNTRY:
		alloc := AllocateExpensesByMarketplace(facts.expenses, mpRevenue, totalRevenue)
		for mp, amount := range alloc {
			key := mp
			if dim == utils.DIMENSION_COUNTRY {
				key = utils.CountryFromMarketplace(mp)
			}
			group(key).expenses += amount
		}
		var adPool float64
		for _, ad := range facts.ads {
			if ad.MarketplaceID == "" {
				adPool += ad.Spend
				continue
			}
			key := ad.MarketplaceID
			if dim == utils.DIMENSION_COUNTRY {
				key = utils.CountryFromMarketplace(ad.MarketplaceID)
			}
			group(key).advertising += ad.Spend
		}
		for mp, amount := range AllocateAmountByShare(adPool, mpRevenue, totalRevenue) {
			key := mp
			if dim == utils.DIMENSION_COUNTRY {
				key = utils.CountryFromMarketplace(mp)
			}
			group(key).advertising += amount
		}
	case utils.DIMENSION_PERIOD:
		for _, e := range facts.expenses {
			group(PeriodKey(e.ExpenseDate, period)).expenses += e.Amount
		}
		for _, ad := range facts.ads {
			group(PeriodKey(ad.SpendDate, period)).advertising += ad.Spend
		}
	default:
		for _, e := range facts.expenses {
			group("").expenses += e.Amount
		}
		for _, ad := range facts.ads {
			group("").advertising += ad.Spend
		}
	}

	// Charges whose order fell outside the sales snapshot spread by revenue share
	if unmatchedFees != 0 || unmatchedRefunds != 0 || unmatchedReturns != 0 {
		var groupRevenue float64
		for _, g := range groups {
			groupRevenue += g.revenue
		}
		if groupRevenue > 0 {
			for _, g := range groups {
				g.fees += unmatchedFees * g.revenue / groupRevenue
				g.refunds += unmatchedRefunds * g.revenue / groupRevenue
				g.returnsCost += unmatchedReturns * g.revenue / groupRevenue
			}
		} else {
			g := group("")
			g.fees += unmatchedFees
			g.refunds += unmatchedRefunds
			g.returnsCost += unmatchedReturns
		}
	}

	if dim == utils.DIMENSION_NONE && len(groups) == 0 {
		group("")
	}

	rows := make([]model.ProfitBreakdownRow, 0, len(groups))
	for key, g := range groups {
		m := CalcMetrics(g.revenue, g.expenses+g.advertising, g.fees, g.refunds, g.cogs)
		rows = append(rows, model.ProfitBreakdownRow{
			Key: key,
			ProfitSummaryResponse: model.ProfitSummaryResponse{
				Revenue:          utils.Round2(g.revenue),
				UnitsSold:        g.units,
				Cogs:             utils.Round2(g.cogs),
				Fees:             utils.Round2(g.fees),
				Refunds:          utils.Round2(g.refunds),
				ReturnsCost:      utils.Round2(g.returnsCost),
				Expenses:         utils.Round2(g.expenses),
				Advertising:      utils.Round2(g.advertising),
				UncostedQuantity: g.uncosted,
				GrossProfit:      m.GrossProfit,
				NetProfit:        m.NetProfit,
				GrossMargin:      m.GrossMargin,
				NetMargin:        m.NetMargin,
			},
		})
	}

	if dim == utils.DIMENSION_PERIOD {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	} else {
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Revenue != rows[j].Revenue {
				return rows[i].Revenue > rows[j].Revenue
			}
			return rows[i].Key < rows[j].Key
		})
	}

	return rows
}
