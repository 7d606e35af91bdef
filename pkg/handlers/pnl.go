package handlers

import (
	"encoding/json"
	"net/http"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/service"
	"sellerpulse/ms-seller-analytics/pkg/utils"
	"sellerpulse/ms-seller-analytics/pkg/valid"

	"github.com/gin-gonic/gin"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PnlHandlers struct {
	service       service.PnlServiceInterface
	exportService service.PnlExportServiceInterface
}

func NewPnlHandlers(service service.PnlServiceInterface, exportService service.PnlExportServiceInterface) *PnlHandlers {
	return &PnlHandlers{service: service, exportService: exportService}
}

func (h *PnlHandlers) GetPnlReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "PnlHandlers.GetPnlReport")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.PnlRequest{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in GetPnlReport")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("PnlHandlers.GetPnlReport")

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

	rs, err := h.service.GetPnlReport(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetPnlReport")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

// ExportPnlReport streams the spreadsheet directly, it is not wrapped in the
// JSON envelope the other routes use.
func (h *PnlHandlers) ExportPnlReport(c *gin.Context) {
	log := logger.WithCtx(c, "PnlHandlers.ExportPnlReport")

	userID, err := utils.CurrentUser(c.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		c.JSON(http.StatusUnauthorized, gin.H{"error": utils.MessageError()[http.StatusUnauthorized]})
		return
	}

	req := model.PnlRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		log.WithError(err).Error("error_400: Cannot bind request in ExportPnlReport")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input:" + err.Error()})
		return
	}

	req.UserRole = c.Request.Header.Get("x-user-roles")
	if err = utils.CheckPermission(c, userID.String(), valid.String(req.AccountID), req.UserRole); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": utils.MessageError()[http.StatusForbidden]})
		return
	}
	req.UserCallAPI = userID

	fileName, content, err := h.exportService.ExportPnlReport(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to ExportPnlReport")
		c.JSON(http.StatusInternalServerError, gin.H{"error": utils.MessageError()[http.StatusInternalServerError]})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, xlsxContentType, content)
}

func (h *PnlHandlers) SendPnlEmail(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "PnlHandlers.SendPnlEmail")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.SendPnlEmailRequest{}
	r.MustBind(&req)

	// log request information
	field, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("error_400: Cannot marshal request in SendPnlEmail")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	log.WithField("req", string(field)).Info("PnlHandlers.SendPnlEmail")

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

	if err := h.exportService.SendPnlEmail(r.Context(), req); err != nil {
		log.WithError(err).Error("Fail to SendPnlEmail")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: utils.MessageError()[http.StatusOK],
		},
	}, nil
}
