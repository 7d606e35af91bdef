package utils

const ADMIN_ROLE = 64

// Supported report periods
const (
	PERIOD_DAY     = "day"
	PERIOD_WEEK    = "week"
	PERIOD_MONTH   = "month"
	PERIOD_QUARTER = "quarter"
	PERIOD_YEAR    = "year"
)

// Breakdown dimensions
const (
	DIMENSION_NONE        = "none"
	DIMENSION_SKU         = "sku"
	DIMENSION_MARKETPLACE = "marketplace"
	DIMENSION_COUNTRY     = "country"
	DIMENSION_PERIOD      = "period"
)

// Chart metrics
const (
	METRIC_SALES       = "sales"
	METRIC_PROFIT      = "profit"
	METRIC_ADVERTISING = "advertising"
	METRIC_RETURNS     = "returns"
)

// Cost lot methods
const (
	COST_METHOD_BATCH            = "BATCH"
	COST_METHOD_TIME_PERIOD      = "TIME_PERIOD"
	COST_METHOD_WEIGHTED_AVERAGE = "WEIGHTED_AVERAGE"
)

// Advertising channel types resolved from campaign names
const (
	AD_CHANNEL_SPONSORED_PRODUCTS    = "sponsored_products"
	AD_CHANNEL_SPONSORED_BRANDS      = "sponsored_brands"
	AD_CHANNEL_SPONSORED_BRAND_VIDEO = "sponsored_brands_video"
	AD_CHANNEL_SPONSORED_DISPLAY     = "sponsored_display"
)

// Fee type categories resolved from fee type names
const (
	FEE_CATEGORY_FBA      = "fba_fees"
	FEE_CATEGORY_REFERRAL = "referral_fees"
	FEE_CATEGORY_STORAGE  = "storage_fees"
	FEE_CATEGORY_OTHER    = "other_fees"
)

const COUNTRY_UNKNOWN = "UNKNOWN"

// Marketplace id -> region code (Amazon marketplace identifiers)
var MARKETPLACE_REGION = map[string]string{
	"ATVPDKIKX0DER":  "US",
	"A2EUQ1WTGCTBG2": "CA",
	"A1AM78C64UM0Y8": "MX",
	"A1F83G8C2ARO7P": "UK",
	"A1PA6795UKMFR9": "DE",
	"A13V1IB3VIYZZH": "FR",
	"APJ6JRA9NG5V4":  "IT",
	"A1RKKUPIHCS9HS": "ES",
	"A1805IZSGTT6HS": "NL",
	"A2NODRKZP88ZB9": "SE",
	"A1C3SOZRARQ6R3": "PL",
	"A1VC38T7YXB528": "JP",
	"A39IBJ37TRP1C6": "AU",
	"A21TJRUUN4KGV":  "IN",
}

// Region code -> ISO country, regions without a mapping resolve to UNKNOWN
var REGION_COUNTRY = map[string]string{
	"US": "US",
	"CA": "CA",
	"MX": "MX",
	"UK": "GB",
	"DE": "DE",
	"FR": "FR",
	"IT": "IT",
	"ES": "ES",
	"NL": "NL",
	"SE": "SE",
	"PL": "PL",
	"JP": "JP",
	"AU": "AU",
	"IN": "IN",
}

const TIME_FORMAT_FOR_QUERRY = "2006-01-02 15:04:05"
const DATE_FORMAT = "2006-01-02"

const DEFAULT_WINDOW_DAYS = 30

// P&L ladder: month to date plus the preceding full months
const PNL_TRAILING_MONTHS = 12

const (
	TABLE_COST_LOT    = "cost_lots"
	TABLE_EXPENSE     = "expenses"
	TABLE_KPI_SUMMARY = "kpi_summary"
)

const (
	ACTION_CREATE_COST_LOT = "create cost lot"
	ACTION_UPDATE_COST_LOT = "update cost lot"
	ACTION_DELETE_COST_LOT = "delete cost lot"
	ACTION_CREATE_EXPENSE  = "create expense"
	ACTION_DELETE_EXPENSE  = "delete expense"
)

const LOG_HISTORY_RETENTION_DAYS = 30
