package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"sellerpulse/ms-seller-analytics/conf"

	"github.com/praslar/lib/common"
	"github.com/sendgrid/rest"
	"github.com/sirupsen/logrus"
	"gitlab.com/goxp/cloud0/ginext"
)

// CheckPermission verifies the calling user owns the seller account, admins bypass
func CheckPermission(ctx context.Context, userId string, accountID string, role string) (err error) {
	log := logrus.WithContext(ctx).WithField("account ID", accountID)

	userRoles, _ := strconv.Atoi(role)
	if (userRoles&ADMIN_ROLE > 0) || (userRoles&ADMIN_ROLE == ADMIN_ROLE) {
		return nil
	}

	param := map[string]string{}
	param["user_id"] = userId
	param["account_id"] = accountID
	body, _, err := common.SendRestAPI(conf.LoadEnv().MSAccountManagement+"/api/user-has-account", rest.Get, nil, param, nil)
	if err != nil {
		log.WithError(err).
			Error("Error when call func SendRestAPI")
		return ginext.NewError(http.StatusInternalServerError, MessageError()[http.StatusInternalServerError])
	}
	tmp := new(struct {
		Data []UserHasAccount `json:"data"`
	})
	if err = json.Unmarshal([]byte(body), &tmp); err != nil {
		log.WithError(err).
			Error("Error when call func Unmarshal")
		return ginext.NewError(http.StatusInternalServerError, MessageError()[http.StatusInternalServerError])
	}

	// Check user has this seller account ?
	if len(tmp.Data) == 0 {
		logrus.Errorf("Fail to get user has account due to %v", err)
		return ginext.NewError(http.StatusForbidden, MessageError()[http.StatusForbidden])
	}

	return nil
}
