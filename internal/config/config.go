package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Cache   CacheConfig
	Contact ContactConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int

	AllowedOrigins []string
	TemplateGlob   string
}

// SheetsConfig names the spreadsheet and the worksheets each page reads.
type SheetsConfig struct {
	CredentialsEnvJSON string
	CredentialsFile    string
	SpreadsheetName    string

	PNLWorksheet      string
	StockWorksheet    string
	CustomerWorksheet string
	DispatchWorksheet string
	ContactWorksheet  string

	FetchTimeoutSeconds int
}

type CacheConfig struct {
	Enabled        bool
	RedisURL       string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RowsTTLSeconds int
}

// ContactConfig selects where contact submissions go: "postgres", "sheet" or
// "log" (the default when nothing else is configured).
type ContactConfig struct {
	Destination string
	Database    DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("SERVER_TEMPLATE_GLOB", "web/templates/*.html")

		viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service_account.json")
		viper.SetDefault("SHEET_SPREADSHEET_NAME", "Business Data")
		viper.SetDefault("SHEET_PNL_WORKSHEET", "PNL")
		viper.SetDefault("SHEET_STOCK_WORKSHEET", "Stock")
		viper.SetDefault("SHEET_CUSTOMER_WORKSHEET", "Customer_Order")
		viper.SetDefault("SHEET_DISPATCH_WORKSHEET", "Dispatch")
		viper.SetDefault("SHEET_CONTACT_WORKSHEET", "Contact")
		viper.SetDefault("SHEET_FETCH_TIMEOUT_SECONDS", 20)

		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_ROWS_TTL_SECONDS", 60)

		viper.SetDefault("CONTACT_DESTINATION", "log")
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "sheetboard")
		viper.SetDefault("DB_SSLMODE", "disable")

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
				TemplateGlob:   viper.GetString("SERVER_TEMPLATE_GLOB"),
			},
			Sheets: SheetsConfig{
				CredentialsEnvJSON:  viper.GetString("GOOGLE_CREDENTIALS_JSON"),
				CredentialsFile:     viper.GetString("GOOGLE_CREDENTIALS_FILE"),
				SpreadsheetName:     viper.GetString("SHEET_SPREADSHEET_NAME"),
				PNLWorksheet:        viper.GetString("SHEET_PNL_WORKSHEET"),
				StockWorksheet:      viper.GetString("SHEET_STOCK_WORKSHEET"),
				CustomerWorksheet:   viper.GetString("SHEET_CUSTOMER_WORKSHEET"),
				DispatchWorksheet:   viper.GetString("SHEET_DISPATCH_WORKSHEET"),
				ContactWorksheet:    viper.GetString("SHEET_CONTACT_WORKSHEET"),
				FetchTimeoutSeconds: viper.GetInt("SHEET_FETCH_TIMEOUT_SECONDS"),
			},
			Cache: CacheConfig{
				Enabled:        viper.GetBool("CACHE_ENABLED"),
				RedisURL:       viper.GetString("REDIS_URL"),
				RedisHost:      viper.GetString("REDIS_HOST"),
				RedisPort:      viper.GetString("REDIS_PORT"),
				RedisPassword:  viper.GetString("REDIS_PASSWORD"),
				RedisDB:        viper.GetInt("REDIS_DB"),
				RowsTTLSeconds: viper.GetInt("CACHE_ROWS_TTL_SECONDS"),
			},
			Contact: ContactConfig{
				Destination: viper.GetString("CONTACT_DESTINATION"),
				Database: DatabaseConfig{
					Host:     viper.GetString("DB_HOST"),
					Port:     viper.GetString("DB_PORT"),
					User:     viper.GetString("DB_USER"),
					Password: viper.GetString("DB_PASSWORD"),
					DBName:   viper.GetString("DB_NAME"),
					SSLMode:  viper.GetString("DB_SSLMODE"),
				},
			},
		}
	})

	return instance
}
