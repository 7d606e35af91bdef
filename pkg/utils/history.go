package utils

import (
	"context"
	"encoding/json"

	"sellerpulse/ms-seller-analytics/pkg/model"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
	"gitlab.com/goxp/cloud0/logger"
)

// PackHistoryModel snapshots one privileged edit into an audit row. The row
// carries both the object state after the edit and the request that caused it.
func PackHistoryModel(ctx context.Context, userID uuid.UUID, worker string, objectID uuid.UUID, objectTable string, action string, description string, object interface{}, request interface{}) (model.History, error) {
	log := logger.WithCtx(ctx, "utils.PackHistoryModel")

	payload, err := json.Marshal(map[string]interface{}{
		"object":  object,
		"request": request,
	})
	if err != nil {
		log.WithError(err).Error("Cannot marshal history payload")
		return model.History{}, err
	}

	history := model.History{
		ObjectID:    objectID,
		ObjectTable: objectTable,
		Action:      action,
		Description: description,
		Data:        postgres.Jsonb{RawMessage: payload},
		Worker:      worker,
	}
	history.CreatorID = userID
	history.UpdaterID = userID

	return history, nil
}
