package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Redis     RedisConfig     `yaml:"redis"      validate:"required"`
	Session   SessionConfig   `yaml:"session"    validate:"required"`
	Purchase  PurchaseConfig  `yaml:"purchase"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
	CORS      CORSConfig      `yaml:"cors"`
	OAuth     OAuthConfig     `yaml:"oauth"`
	Streaming StreamingConfig `yaml:"streaming"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Messaging MessagingConfig `yaml:"messaging"  validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"fanfirst"     validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int    `yaml:"db"        env:"REDIS_DB"        env-default:"0"              validate:"min=0"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"10"             validate:"min=1"`
}

type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE_NAME"   env-default:"fanfirst_session" validate:"required"`
	CookieDomain string        `yaml:"cookie_domain" env:"SESSION_COOKIE_DOMAIN" env-default:""`
	Secure       bool          `yaml:"secure"        env:"SESSION_SECURE"        env-default:"false"`
	TTL          time.Duration `yaml:"ttl"           env:"SESSION_TTL"           env-default:"168h" validate:"gt=0"`
	StateTTL     time.Duration `yaml:"state_ttl"     env:"OAUTH_STATE_TTL"       env-default:"10m"  validate:"gt=0"`
}

type PurchaseConfig struct {
	// PendingTTL == 0 отключает автоматический перевод pending покупок в failed.
	PendingTTL time.Duration `yaml:"pending_ttl" env:"PURCHASE_PENDING_TTL" env-default:"0"   validate:"min=0"`
}

type RateLimitConfig struct {
	AuthLimit  int           `yaml:"auth_limit"  env:"RATE_LIMIT_AUTH"        env-default:"1000" validate:"min=1"`
	AuthWindow time.Duration `yaml:"auth_window" env:"RATE_LIMIT_AUTH_WINDOW" env-default:"15m"  validate:"gt=0"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins" env:"CORS_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

type OAuthClientConfig struct {
	ClientID     string   `yaml:"client_id"     env:"CLIENT_ID"`
	ClientSecret string   `yaml:"client_secret" env:"CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirect_url"  env:"REDIRECT_URL"`
	Scopes       []string `yaml:"scopes"        env:"SCOPES" env-separator:","`
}

// Enabled - провайдер подключается только при заданных client id и secret.
func (o OAuthClientConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != ""
}

type OAuthConfig struct {
	Spotify OAuthClientConfig `yaml:"spotify" env-prefix:"SPOTIFY_"`
	YouTube OAuthClientConfig `yaml:"youtube" env-prefix:"YOUTUBE_"`
}

type StreamingConfig struct {
	CacheTTL       time.Duration `yaml:"cache_ttl"       env:"STREAMING_CACHE_TTL"       env-default:"10m" validate:"gt=0"`
	MaxRetries     int           `yaml:"max_retries"     env:"STREAMING_MAX_RETRIES"     env-default:"3"   validate:"min=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"STREAMING_REQUEST_TIMEOUT" env-default:"15s" validate:"gt=0"`
	SpotifyBaseURL string        `yaml:"spotify_base_url" env:"SPOTIFY_API_BASE_URL"     env-default:"https://api.spotify.com/v1"`
	YouTubeBaseURL string        `yaml:"youtube_base_url" env:"YOUTUBE_API_BASE_URL"     env-default:"https://www.googleapis.com/youtube/v3"`
}

type MetricsConfig struct {
	// Addr == "" отключает отдельный listener для /metrics.
	Addr string `yaml:"addr" env:"METRICS_ADDR" env-default:":9090"`
}

type MessagingConfig struct {
	MaxRetries int `yaml:"max_retries" env:"MESSAGING_MAX_RETRIES" env-default:"5" validate:"min=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
