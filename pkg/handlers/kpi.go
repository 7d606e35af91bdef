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

type KpiHandlers struct {
	service service.KpiServiceInterface
}

func NewKpiHandlers(service service.KpiServiceInterface) *KpiHandlers {
	return &KpiHandlers{service: service}
}

func (h *KpiHandlers) RecalculateKpi(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "KpiHandlers.RecalculateKpi")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.RecalculateKpiRequest{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in RecalculateKpi")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("KpiHandlers.RecalculateKpi")

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

	rs, err := h.service.RecalculateKpi(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to RecalculateKpi")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *KpiHandlers) GetListKpiSummary(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "KpiHandlers.GetListKpiSummary")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.KpiParam{}
	r.MustBind(&req)

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

	rs, err := h.service.GetListKpiSummary(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListKpiSummary")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs.Data,
			Meta: rs.Meta,
		},
	}, nil
}
