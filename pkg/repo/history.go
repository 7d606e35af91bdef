package repo

import (
	"context"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"

	"gorm.io/gorm"
)

func (r *RepoPG) LogHistory(ctx context.Context, history model.History, tx *gorm.DB) (rs model.History, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Create(&history).Error; err != nil {
		return rs, err
	}

	return history, nil
}

func (r *RepoPG) DeleteLogHistory(ctx context.Context, tx *gorm.DB) error {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	cutoff := time.Now().AddDate(0, 0, -utils.LOG_HISTORY_RETENTION_DAYS)
	if err := tx.Unscoped().Where("created_at < ?", cutoff).Delete(&model.History{}).Error; err != nil {
		return err
	}

	return nil
}
