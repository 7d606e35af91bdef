package utils

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserHasAccount struct {
	UserID    uuid.UUID `json:"user_id"`
	AccountID uuid.UUID `json:"account_id"`
	Domain    string    `json:"domain"`
}

func CurrentUser(c *http.Request) (uuid.UUID, error) {
	userIdStr := c.Header.Get("x-user-id")
	if strings.Contains(userIdStr, "|") {
		userIdStr = strings.Split(userIdStr, "|")[0]
	}
	res, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, err
	}
	return res, nil
}

func String(in string) *string {
	return &in
}

func UUID(req *uuid.UUID) uuid.UUID {
	if req == nil {
		return uuid.Nil
	}
	return *req
}

// Round2 rounds monetary and percentage values to 2 decimals
func Round2(in float64) float64 {
	return math.Round(in*100) / 100
}

// EndOfDay pushes a calendar date to 23:59:59.999 so end date filters are inclusive
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
}

// BeginOfDay truncates to 00:00:00 of the same calendar day
func BeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CountryFromMarketplace maps a marketplace id through its region to an ISO country code
func CountryFromMarketplace(marketplaceID string) string {
	region, ok := MARKETPLACE_REGION[marketplaceID]
	if !ok {
		return COUNTRY_UNKNOWN
	}
	country, ok := REGION_COUNTRY[region]
	if !ok {
		return COUNTRY_UNKNOWN
	}
	return country
}

// AdChannelFromCampaign classifies a campaign by case-insensitive substring match,
// longest pattern first so "sponsored brands video" does not land in "sponsored brands"
func AdChannelFromCampaign(campaignName string) string {
	name := strings.ToLower(campaignName)
	switch {
	case strings.Contains(name, "sponsored brands video") || strings.Contains(name, "sbv"):
		return AD_CHANNEL_SPONSORED_BRAND_VIDEO
	case strings.Contains(name, "sponsored brands") || strings.Contains(name, "sponsored brand"):
		return AD_CHANNEL_SPONSORED_BRANDS
	case strings.Contains(name, "sponsored display"):
		return AD_CHANNEL_SPONSORED_DISPLAY
	default:
		return AD_CHANNEL_SPONSORED_PRODUCTS
	}
}

// FeeCategoryFromType classifies a marketplace fee type name into a report category
func FeeCategoryFromType(feeType string) string {
	name := strings.ToLower(feeType)
	switch {
	case strings.Contains(name, "fba") || strings.Contains(name, "fulfillment") || strings.Contains(name, "fulfilment"):
		return FEE_CATEGORY_FBA
	case strings.Contains(name, "referral") || strings.Contains(name, "commission"):
		return FEE_CATEGORY_REFERRAL
	case strings.Contains(name, "storage"):
		return FEE_CATEGORY_STORAGE
	default:
		return FEE_CATEGORY_OTHER
	}
}

// SupportedPeriod reports whether the period enum value is valid for bucketing
func SupportedPeriod(period string) bool {
	switch period {
	case PERIOD_DAY, PERIOD_WEEK, PERIOD_MONTH, PERIOD_QUARTER, PERIOD_YEAR:
		return true
	}
	return false
}

// SupportedDimension reports whether the breakdown dimension enum value is valid
func SupportedDimension(dimension string) bool {
	switch dimension {
	case DIMENSION_NONE, DIMENSION_SKU, DIMENSION_MARKETPLACE, DIMENSION_COUNTRY, DIMENSION_PERIOD:
		return true
	}
	return false
}
