package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultPhaseOverrides mantém a fase 338889931 como perdida em qualquer pipe
const DefaultPhaseOverrides = `{"*":{"lostPhaseIds":["338889931"]}}`

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Pipefy   Pipefy   `mapstructure:",squash"`
	DealSync DealSync `mapstructure:",squash"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"cors_allowed_origins"`
	WriteTimeout    time.Duration `mapstructure:"server_write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Pipefy struct {
	URL                 string                          `mapstructure:"pipefy_url"`
	PageSize            int                             `mapstructure:"pipefy_page_size"`
	PhaseBatchSize      int                             `mapstructure:"pipefy_phase_batch_size"`
	MaxPagesPerPhase    int                             `mapstructure:"pipefy_max_pages_per_phase"`
	MaxRateLimitRetries int                             `mapstructure:"pipefy_max_rate_limit_retries"`
	BackoffBase         time.Duration                   `mapstructure:"pipefy_backoff_base"`
	BackoffMax          time.Duration                   `mapstructure:"pipefy_backoff_max"`
	RequestsPerSecond   float64                         `mapstructure:"pipefy_requests_per_second"`
	HTTPTimeout         time.Duration                   `mapstructure:"pipefy_http_timeout"`
	RawPhaseOverrides   string                          `mapstructure:"pipefy_phase_overrides"`
	PhaseOverrides      map[string]domain.PhaseOverride `mapstructure:"-"`
}

type DealSync struct {
	CronSchedule        string `mapstructure:"deal_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"deal_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"deal_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"deal_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001,https://plinhub.vercel.app,https://hub.plinseguros.com.br")
	// A busca ao vivo pagina todas as fases do pipe e pode levar vários segundos
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "2m")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/plinhub")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("PIPEFY_URL", "https://api.pipefy.com/graphql")
	viper.SetDefault("PIPEFY_PAGE_SIZE", 50)
	viper.SetDefault("PIPEFY_PHASE_BATCH_SIZE", 2)
	viper.SetDefault("PIPEFY_MAX_PAGES_PER_PHASE", 100)

	// Backoff para HTTP 429: 1s, 2s, 4s (teto de 5s), abortando a fase após 3 tentativas
	viper.SetDefault("PIPEFY_MAX_RATE_LIMIT_RETRIES", 3)
	viper.SetDefault("PIPEFY_BACKOFF_BASE", "1s")
	viper.SetDefault("PIPEFY_BACKOFF_MAX", "5s")

	// 0 = sem limite local de requisições
	viper.SetDefault("PIPEFY_REQUESTS_PER_SECOND", 0)
	viper.SetDefault("PIPEFY_HTTP_TIMEOUT", "30s")
	viper.SetDefault("PIPEFY_PHASE_OVERRIDES", DefaultPhaseOverrides)

	// Sincronização de negócios: a cada 2 horas, 2 empresas em paralelo
	viper.SetDefault("DEAL_SYNC_CRON", "0 */2 * * *")
	viper.SetDefault("DEAL_SYNC_REQUEST_DELAY_SECONDS", 1)
	viper.SetDefault("DEAL_SYNC_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("DEAL_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	overrides, err := ParsePhaseOverrides(config.Pipefy.RawPhaseOverrides)
	if err != nil {
		return nil, err
	}
	config.Pipefy.PhaseOverrides = overrides

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParsePhaseOverrides interpreta a tabela de overrides de fase (JSON indexado por pipe ID)
func ParsePhaseOverrides(raw string) (map[string]domain.PhaseOverride, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultPhaseOverrides
	}

	overrides := make(map[string]domain.PhaseOverride)
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &overrides); err != nil {
		return nil, fmt.Errorf("erro ao interpretar PIPEFY_PHASE_OVERRIDES: %w", err)
	}

	return overrides, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
