package service

import (
	"context"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/repo"

	"gitlab.com/goxp/cloud0/logger"
)

type HistoryService struct {
	repo repo.PGInterface
}

func NewHistoryService(repo repo.PGInterface) HistoryServiceInterface {
	return &HistoryService{repo: repo}
}

type HistoryServiceInterface interface {
	LogHistory(ctx context.Context, req model.History)
	CleanupHistory(ctx context.Context) error
}

// LogHistory is best effort, an audit write never fails the edit it records.
func (s *HistoryService) LogHistory(ctx context.Context, req model.History) {
	log := logger.WithCtx(ctx, "HistoryService.LogHistory")

	_, err := s.repo.LogHistory(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("Fail to log history")
		return
	}
	return
}

// CleanupHistory drops audit rows older than the retention window.
func (s *HistoryService) CleanupHistory(ctx context.Context) error {
	log := logger.WithCtx(ctx, "HistoryService.CleanupHistory")

	if err := s.repo.DeleteLogHistory(ctx, nil); err != nil {
		log.WithError(err).Error("Fail to cleanup history")
		return err
	}
	return nil
}
