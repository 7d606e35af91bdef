package utils

import (
	"testing"
	"time"
)

func TestCountryFromMarketplace(t *testing.T) {
	tests := []struct {
		name          string
		marketplaceID string
		want          string
	}{
		{"US marketplace", "ATVPDKIKX0DER", "US"},
		{"UK region maps to ISO GB", "A1F83G8C2ARO7P", "GB"},
		{"German marketplace", "A1PA6795UKMFR9", "DE"},
		{"unknown marketplace", "ZZZZZZZZZZZZZ", COUNTRY_UNKNOWN},
		{"empty marketplace", "", COUNTRY_UNKNOWN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountryFromMarketplace(tt.marketplaceID); got != tt.want {
				t.Errorf("CountryFromMarketplace() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdChannelFromCampaign(t *testing.T) {
	tests := []struct {
		name     string
		campaign string
		want     string
	}{
		{"brands video wins over brands", "Sponsored Brands Video - Q2", AD_CHANNEL_SPONSORED_BRAND_VIDEO},
		{"sbv shorthand", "SBV summer push", AD_CHANNEL_SPONSORED_BRAND_VIDEO},
		{"brands", "Sponsored Brands - generic", AD_CHANNEL_SPONSORED_BRANDS},
		{"display", "sponsored display retargeting", AD_CHANNEL_SPONSORED_DISPLAY},
		{"default is products", "SP auto campaign", AD_CHANNEL_SPONSORED_PRODUCTS},
		{"case insensitive", "SPONSORED BRANDS push", AD_CHANNEL_SPONSORED_BRANDS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdChannelFromCampaign(tt.campaign); got != tt.want {
				t.Errorf("AdChannelFromCampaign() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeeCategoryFromType(t *testing.T) {
	tests := []struct {
		name    string
		feeType string
		want    string
	}{
		{"fba", "FBA pick & pack", FEE_CATEGORY_FBA},
		{"fulfillment spelling", "Fulfillment fee", FEE_CATEGORY_FBA},
		{"fulfilment spelling", "fulfilment fee", FEE_CATEGORY_FBA},
		{"referral", "Referral fee", FEE_CATEGORY_REFERRAL},
		{"commission", "sales commission", FEE_CATEGORY_REFERRAL},
		{"storage", "Monthly storage fee", FEE_CATEGORY_STORAGE},
		{"everything else", "High volume listing fee", FEE_CATEGORY_OTHER},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FeeCategoryFromType(tt.feeType); got != tt.want {
				t.Errorf("FeeCategoryFromType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{-1.006, -1.01},
		{0, 0},
		{33.333333, 33.33},
		{152.0 / 3, 50.67},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2021, 6, 16, 10, 30, 0, 0, time.UTC)
	got := EndOfDay(in)
	want := time.Date(2021, 6, 16, 23, 59, 59, 999000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
	// a timestamp later the same day is still inside the window
	if EndOfDay(in).Before(time.Date(2021, 6, 16, 23, 0, 0, 0, time.UTC)) {
		t.Error("EndOfDay() excludes the evening of the same day")
	}
}

func TestBeginOfDay(t *testing.T) {
	in := time.Date(2021, 6, 16, 10, 30, 45, 123, time.UTC)
	want := time.Date(2021, 6, 16, 0, 0, 0, 0, time.UTC)
	if got := BeginOfDay(in); !got.Equal(want) {
		t.Errorf("BeginOfDay() = %v, want %v", got, want)
	}
}

func TestSupportedPeriod(t *testing.T) {
	for _, p := range []string{PERIOD_DAY, PERIOD_WEEK, PERIOD_MONTH, PERIOD_QUARTER, PERIOD_YEAR} {
		if !SupportedPeriod(p) {
			t.Errorf("SupportedPeriod(%q) = false, want true", p)
		}
	}
	if SupportedPeriod("fortnight") || SupportedPeriod("") {
		t.Error("SupportedPeriod() accepts unknown values")
	}
}

func TestSupportedDimension(t *testing.T) {
	for _, d := range []string{DIMENSION_NONE, DIMENSION_SKU, DIMENSION_MARKETPLACE, DIMENSION_COUNTRY, DIMENSION_PERIOD} {
		if !SupportedDimension(d) {
			t.Errorf("SupportedDimension(%q) = false, want true", d)
		}
	}
	if SupportedDimension("warehouse") {
		t.Error("SupportedDimension() accepts unknown values")
	}
}
