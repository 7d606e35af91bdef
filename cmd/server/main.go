package main

import (
	"context"
	"os"
	"time"

	"sellerpulse/ms-seller-analytics/conf"
	"sellerpulse/ms-seller-analytics/pkg/repo"
	"sellerpulse/ms-seller-analytics/pkg/route"
	"sellerpulse/ms-seller-analytics/pkg/service"
	"sellerpulse/ms-seller-analytics/pkg/utils"

	"gitlab.com/goxp/cloud0/logger"
)

const (
	APPNAME = "SellerAnalytics"
)

func main() {
	conf.SetEnv()
	logger.Init(APPNAME)
	utils.LoadMessageError()

	// TO DEBUG - No need config when deploy
	_ = os.Setenv("PORT", conf.LoadEnv().Port)
	_ = os.Setenv("DB_HOST", conf.LoadEnv().DBHost)
	_ = os.Setenv("DB_PORT", conf.LoadEnv().DBPort)
	_ = os.Setenv("DB_USER", conf.LoadEnv().DBUser)
	_ = os.Setenv("DB_PASS", conf.LoadEnv().DBPass)
	_ = os.Setenv("DB_NAME", conf.LoadEnv().DBName)
	_ = os.Setenv("ENABLE_DB", conf.LoadEnv().EnableDB)

	app := route.NewService()
	ctx := context.Background()

	// drop audit rows past retention once a day
	historyService := service.NewHistoryService(repo.NewPGRepo(app.GetDB()))
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := historyService.CleanupHistory(ctx); err != nil {
				logger.Tag("main").Error(err)
			}
		}
	}()

	err := app.Start(ctx)
	if err != nil {
		logger.Tag("main").Error(err)
	}
	os.Clearenv()
}
