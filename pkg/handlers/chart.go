package handlers

import (
	"encoding/json"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/service"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type ChartHandlers struct {
	service service.ChartServiceInterface
}

func NewChartHandlers(service service.ChartServiceInterface) *ChartHandlers {
	return &ChartHandlers{service: service}
}

func (h *ChartHandlers) GetChartTrend(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ChartHandlers.GetChartTrend")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.ChartTrendRequest{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in GetChartTrend")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("ChartHandlers.GetChartTrend")

	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input:"+err.Error())
	}

	// check permission
	req.UserRole = r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), valid.String(req.AccountID), req.UserRole); err != nil {
		return nil, err
	}
	req.UserCallAPI = userID

	rs, err := h.service.GetChartTrend(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetChartTrend")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *ChartHandlers) GetChartCompare(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ChartHandlers.GetChartCompare")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.ChartTrendRequest{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in GetChartCompare")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("ChartHandlers.GetChartCompare")

	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input:"+err.Error())
	}

	// check permission
	req.UserRole = r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), valid.String(req.AccountID), req.UserRole); err != nil {
		return nil, err
	}
	req.UserCallAPI = userID

	rs, err := h.service.GetChartCompare(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetChartCompare")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}
