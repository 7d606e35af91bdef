package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port      string `env:"PORT" envDefault:"8083"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	DBHost    string `env:"DB_HOST" envDefault:"localhost"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER" envDefault:"analytics_dev_user"`
	DBPass    string `env:"DB_PASS" envDefault:"analytics_dev_pass"`
	DBName    string `env:"DB_NAME" envDefault:"analytics_dev_ms_seller_analytics"`
	EnableDB  string `env:"ENABLE_DB" envDefault:"true"`

	MSAccountManagement string `env:"MS_ACCOUNT_MANAGEMENT" envDefault:"http://ms-account-management"`

	SendinblueAPIKey string `env:"SENDINBLUE_API_KEY" envDefault:""`
	ReportFromName   string `env:"REPORT_FROM_NAME" envDefault:"SellerPulse Reports"`
	ReportFromEmail  string `env:"REPORT_FROM_EMAIL" envDefault:"reports@sellerpulse.io"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}
