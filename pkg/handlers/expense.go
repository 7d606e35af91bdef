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

type ExpenseHandlers struct {
	service service.ExpenseServiceInterface
}

func NewExpenseHandlers(service service.ExpenseServiceInterface) *ExpenseHandlers {
	return &ExpenseHandlers{service: service}
}

func (h *ExpenseHandlers) CreateExpense(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ExpenseHandlers.CreateExpense")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.ExpenseBody{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in CreateExpense")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("ExpenseHandlers.CreateExpense")

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

	rs, err := h.service.CreateExpense(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateExpense")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *ExpenseHandlers) GetOneExpense(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ExpenseHandlers.GetOneExpense")

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

	rs, err := h.service.GetOneExpense(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneExpense")
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

func (h *ExpenseHandlers) DeleteExpense(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ExpenseHandlers.DeleteExpense")

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
	expense, err := h.service.GetOneExpense(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneExpense in DeleteExpense")
		return nil, err
	}
	role := r.GinCtx.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(r.Context(), userID.String(), expense.AccountID.String(), role); err != nil {
		return nil, err
	}

	if err := h.service.DeleteExpense(r.Context(), id, userID); err != nil {
		log.WithError(err).Error("Fail to DeleteExpense")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: utils.MessageError()[http.StatusOK],
		},
	}, nil
}

func (h *ExpenseHandlers) GetListExpense(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ExpenseHandlers.GetListExpense")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.ExpenseParam{}
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

	rs, err := h.service.GetListExpense(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListExpense")
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
