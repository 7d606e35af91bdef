package handlers

import (
	"encoding/json"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/service"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/google/uuid"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type CostLotHandlers struct {
	service service.CostLotServiceInterface
}

func NewCostLotHandlers(service service.CostLotServiceInterface) *CostLotHandlers {
	return &CostLotHandlers{service: service}
}

func (h *CostLotHandlers) CreateCostLot(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CostLotHandlers.CreateCostLot")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.CostLotBody{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in CreateCostLot")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("CostLotHandlers.CreateCostLot")

	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input:"+err.Error())
	}

	// check permission
	role := r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), req.AccountID.String(), role); err != nil {
		return nil, err
	}
	req.UserID = userID

	rs, err := h.service.CreateCostLot(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateCostLot")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *CostLotHandlers) GetOneCostLot(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CostLotHandlers.GetOneCostLot")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := uuid.Parse(r.GinCtx.Param("id"))
	if err != nil {
		log.WithError(err).Error("error_400: Invalid id")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid id")
	}

	rs, err := h.service.GetOneCostLot(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneCostLot")
		return nil, err
	}

	// check permission against the owning account
	role := r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), rs.AccountID.String(), role); err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *CostLotHandlers) UpdateCostLot(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CostLotHandlers.UpdateCostLot")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := uuid.Parse(r.GinCtx.Param("id"))
	if err != nil {
		log.WithError(err).Error("error_400: Invalid id")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid id")
	}

	// Check valid request
	req := model.UpdateCostLotBody{}
	r.MustBind(&req)
	req.ID = id

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in UpdateCostLot")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("CostLotHandlers.UpdateCostLot")

	// check permission against the owning account
	lot, err := h.service.GetOneCostLot(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneCostLot in UpdateCostLot")
		return nil, err
	}
	role := r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), lot.AccountID.String(), role); err != nil {
		return nil, err
	}
	req.UserID = userID

	rs, err := h.service.UpdateCostLot(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to UpdateCostLot")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *CostLotHandlers) DeleteCostLot(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CostLotHandlers.DeleteCostLot")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := uuid.Parse(r.GinCtx.Param("id"))
	if err != nil {
		log.WithError(err).Error("error_400: Invalid id")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid id")
	}

	// check permission against the owning account
	lot, err := h.service.GetOneCostLot(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneCostLot in DeleteCostLot")
		return nil, err
	}
	role := r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), lot.AccountID.String(), role); err != nil {
		return nil, err
	}

	if err := h.service.DeleteCostLot(r.Context(), id, userID); err != nil {
		log.WithError(err).Error("Fail to DeleteCostLot")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: utils.MessageError()[http.StatusOK],
		},
	}, nil
}

func (h *CostLotHandlers) GetListCostLot(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CostLotHandlers.GetListCostLot")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.CostLotParam{}
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

	rs, err := h.service.GetListCostLot(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListCostLot")
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
