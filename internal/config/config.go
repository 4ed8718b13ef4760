package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeySession = key("session")
)

const (
	PostgresStoreDriver = "postgres"
	MemoryStoreDriver   = "memory"
)

type Config struct {
	Service  Service
	Platform Platform
	Postgres ReadEnvPostgres
	Store    Store
	Blob     Blob
	Identity Identity
	Stickers Stickers
	Giphy    Giphy
	Prefs    Prefs
	Session  Session
	Logger   Logger
	Metrics  Metrics
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"8080"`
	Name string `env:"SERVICE_NAME" env-default:"quickchat"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type ReadEnvPostgres struct {
	User     string `env:"QUICKCHAT_POSTGRES_USER"`
	Password string `env:"QUICKCHAT_POSTGRES_PASSWORD"`
	Database string `env:"QUICKCHAT_POSTGRES_DB"`
	Host     string `env:"QUICKCHAT_POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"QUICKCHAT_POSTGRES_PORT" env-default:"5432"`

	ListenerMinReconnect time.Duration `env:"QUICKCHAT_POSTGRES_LISTENER_MIN_RECONNECT" env-default:"1s"`
	ListenerMaxReconnect time.Duration `env:"QUICKCHAT_POSTGRES_LISTENER_MAX_RECONNECT" env-default:"1m"`
}

type Store struct {
	Driver string `env:"QUICKCHAT_STORE_DRIVER" env-default:"postgres"`
	// StrictDedup serialises conversation lookup and creation. Off by default.
	StrictDedup bool `env:"CONVERSATION_STRICT_DEDUP" env-default:"false"`
}

type Blob struct {
	BaseURL   string        `env:"BLOB_BASE_URL" env-required:"true"`
	PublicURL string        `env:"BLOB_PUBLIC_URL" env-required:"true"`
	APIKey    string        `env:"BLOB_API_KEY"`
	Timeout   time.Duration `env:"BLOB_TIMEOUT" env-default:"60s"`
}

type Identity struct {
	BaseURL string        `env:"IDENTITY_BASE_URL" env-required:"true"`
	Timeout time.Duration `env:"IDENTITY_TIMEOUT" env-default:"10s"`
}

type Stickers struct {
	URL     string        `env:"STICKERS_URL" env-default:"https://cdn.jsdelivr.net/gh/naptestdev/zalo-stickers/data/favourite.json"`
	Timeout time.Duration `env:"STICKERS_TIMEOUT" env-default:"10s"`
}

type Giphy struct {
	BaseURL  string        `env:"GIPHY_BASE_URL" env-default:"https://api.giphy.com"`
	APIKey   string        `env:"GIPHY_API_KEY"`
	Timeout  time.Duration `env:"GIPHY_TIMEOUT" env-default:"10s"`
	Debounce time.Duration `env:"GIPHY_DEBOUNCE" env-default:"500ms"`
}

type Prefs struct {
	Path string `env:"PREFS_BADGER_PATH" env-default:"./data/prefs"`
}

type Session struct {
	JWTSecret string        `env:"SESSION_JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"SESSION_TOKEN_TTL" env-default:"24h"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" env-default:"INFO"`
	File  string `env:"LOG_FILE" env-default:"/tmp/quickchat.log"`
}

type Metrics struct {
	Path string `env:"METRICS_PATH" env-default:"/metrics"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}
