package route

import (
	"sellerpulse/ms-seller-analytics/pkg/handlers"
	"sellerpulse/ms-seller-analytics/pkg/repo"
	service2 "sellerpulse/ms-seller-analytics/pkg/service"

	"github.com/caarlos0/env/v6"
	"github.com/gin-contrib/cors"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"
)

type extraSetting struct {
	DbDebugEnable bool `env:"DB_DEBUG_ENABLE" envDefault:"true"`
}

type Service struct {
	*service.BaseApp
	setting *extraSetting
}

func NewService() *Service {
	s := &Service{
		service.NewApp("MS Seller Analytics", "v1.0"),
		&extraSetting{},
	}

	// repo
	_ = env.Parse(s.setting)
	db := s.GetDB()
	if s.setting.DbDebugEnable {
		db = db.Debug()
	}
	repoPG := repo.NewPGRepo(db)
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	historyService := service2.NewHistoryService(repoPG)
	profitService := service2.NewProfitService(repoPG)
	pnlService := service2.NewPnlService(repoPG, profitService)
	pnlExportService := service2.NewPnlExportService(pnlService)
	chartService := service2.NewChartService(profitService)
	costLotService := service2.NewCostLotService(repoPG, historyService)
	expenseService := service2.NewExpenseService(repoPG, historyService)
	kpiService := service2.NewKpiService(repoPG)

	profitHandle := handlers.NewProfitHandlers(profitService)
	pnlHandle := handlers.NewPnlHandlers(pnlService, pnlExportService)
	chartHandle := handlers.NewChartHandlers(chartService)
	costLotHandle := handlers.NewCostLotHandlers(costLotService)
	expenseHandle := handlers.NewExpenseHandlers(expenseService)
	kpiHandle := handlers.NewKpiHandlers(kpiService)

	v1Api := s.Router.Group("/api/v1")

	// profit reports
	v1Api.GET("/profit/overview", ginext.WrapHandler(profitHandle.OverviewProfit))
	v1Api.GET("/profit/breakdown", ginext.WrapHandler(profitHandle.GetProfitBreakdown))
	v1Api.GET("/profit/pnl", ginext.WrapHandler(pnlHandle.GetPnlReport))
	v1Api.GET("/profit/pnl/export", pnlHandle.ExportPnlReport)
	v1Api.POST("/profit/pnl/send-email", ginext.WrapHandler(pnlHandle.SendPnlEmail))

	// charts
	v1Api.GET("/chart/trend", ginext.WrapHandler(chartHandle.GetChartTrend))
	v1Api.GET("/chart/compare", ginext.WrapHandler(chartHandle.GetChartCompare))

	// cost lots
	v1Api.POST("/cost-lots", ginext.WrapHandler(costLotHandle.CreateCostLot))
	v1Api.GET("/cost-lots", ginext.WrapHandler(costLotHandle.GetListCostLot))
	v1Api.GET("/cost-lots/:id", ginext.WrapHandler(costLotHandle.GetOneCostLot))
	v1Api.PUT("/cost-lots/:id", ginext.WrapHandler(costLotHandle.UpdateCostLot))
	v1Api.DELETE("/cost-lots/:id", ginext.WrapHandler(costLotHandle.DeleteCostLot))

	// expenses
	v1Api.POST("/expenses", ginext.WrapHandler(expenseHandle.CreateExpense))
	v1Api.GET("/expenses", ginext.WrapHandler(expenseHandle.GetListExpense))
	v1Api.GET("/expenses/:id", ginext.WrapHandler(expenseHandle.GetOneExpense))
	v1Api.DELETE("/expenses/:id", ginext.WrapHandler(expenseHandle.DeleteExpense))

	// kpi
	v1Api.POST("/kpi/recalculate", ginext.WrapHandler(kpiHandle.RecalculateKpi))
	v1Api.GET("/kpi", ginext.WrapHandler(kpiHandle.GetListKpiSummary))

	// Migrate
	migrateHandler := handlers.NewMigrationHandler(db)
	s.Router.POST("/internal/migrate", migrateHandler.Migrate)

	return s
}
