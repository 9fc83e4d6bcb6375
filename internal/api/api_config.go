package api

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/spendtrack/spendtrack-api/internal/database"
)

// APIConfig is built once at process start and threaded into every
// handler; nothing reads ambient process state after LoadEnvConfig
// returns.
type APIConfig struct {
	db          database.Querier
	dbURL       string
	platform    string
	secret      string
	algorithm   string
	tokenTTL    time.Duration
	corsOrigins []string
	logger      *slog.Logger
}

func LoadEnvConfig(envPath string) *APIConfig {
	cfg := &APIConfig{}

	// get environment variables
	if len(envPath) != 0 {
		_ = godotenv.Load(envPath)
	}

	cfg.platform = os.Getenv("PLATFORM")
	cfg.secret = os.Getenv("SECRET")

	cfg.algorithm = os.Getenv("ALGORITHM")
	if cfg.algorithm == "" {
		cfg.algorithm = "HS256"
	}

	cfg.tokenTTL = time.Hour
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.tokenTTL = parsed
		} else {
			slog.Warn("could not parse TOKEN_TTL, keeping 1h default", slog.String("value", ttl))
		}
	}

	cfg.corsOrigins = []string{"*"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.corsOrigins = strings.Split(origins, ",")
	}

	cfg.GenerateDBConnectionString()

	{
		slogLevel := os.Getenv("SLOG_LEVEL")
		switch slogLevel {
		case "DEBUG":
			cfg.NewLogger(slog.LevelDebug)
		case "WARN":
			cfg.NewLogger(slog.LevelWarn)
		case "ERROR":
			cfg.NewLogger(slog.LevelError)
		default:
			cfg.NewLogger(slog.LevelInfo)
		}
	}

	return cfg
}

func (cfg *APIConfig) NewLogger(level slog.Level) {
	cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout,
		&slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.logger)
}

func (cfg *APIConfig) GenerateDBConnectionString() *string {
	envOrDefault := func(envVar string, defaultVal string) string {
		envVal := os.Getenv(envVar)
		if len(envVal) == 0 {
			envVal = defaultVal
		}
		return envVal
	}

	dbUser := envOrDefault("DB_USER", "postgres")
	dbPassword := envOrDefault("DB_PASSWORD", "postgres")
	dbHost := envOrDefault("DB_HOST", "localhost")
	dbPort := envOrDefault("DB_PORT", "5432")
	dbName := envOrDefault("DB_NAME", "spendtrack")

	cfg.dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser,
		dbPassword,
		dbHost,
		dbPort,
		dbName,
	)
	return &cfg.dbURL
}

func (cfg *APIConfig) ConnectToDB(fs embed.FS, migrationsDir string) {
	db, err := sql.Open("postgres", cfg.dbURL)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Default to relative directory so tests know where to find migrations
	// Otherwise, use embedded directory in a compiled binary context
	if len(migrationsDir) == 0 {
		migrationsDir = "../../sql/schema"
	} else {
		goose.SetBaseFS(fs)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}

	if err = goose.Up(db, migrationsDir); err != nil {
		slog.Error("could not apply database migrations with goose; " + err.Error())
		panic(err)
	}

	cfg.db = database.New(db)
}
