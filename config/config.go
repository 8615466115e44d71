package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ArchiveConfig points at the S3-compatible bucket that receives round
// snapshots. A zero value disables archiving.
type ArchiveConfig struct {
	AccountID       string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

func (a ArchiveConfig) Enabled() bool {
	return a != ArchiveConfig{}
}

// Config holds every runtime setting of the service.
type Config struct {
	DatabaseURL           string
	JWTSecretKey          string
	OrganizerPasswordHash string
	ServerPort            int
	CORSAllowedOrigins    []string
	LogLevel              slog.Level
	Archive               ArchiveConfig
}

// Load reads the configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	// A missing .env file is fine: production sets real environment variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	level, err := parseLogLevel(getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	origins := []string{"*"}
	if raw := getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	archive := ArchiveConfig{
		AccountID:       getenv("ARCHIVE_ACCOUNT_ID"),
		Endpoint:        getenv("ARCHIVE_ENDPOINT"),
		Region:          getenv("ARCHIVE_REGION"),
		AccessKeyID:     getenv("ARCHIVE_ACCESS_KEY_ID"),
		SecretAccessKey: getenv("ARCHIVE_SECRET_ACCESS_KEY"),
		BucketName:      getenv("ARCHIVE_BUCKET"),
		PublicBaseURL:   getenv("ARCHIVE_PUBLIC_BASE_URL"),
	}
	if err := validateArchive(archive); err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:           dbURL,
		JWTSecretKey:          jwtKey,
		OrganizerPasswordHash: getenv("ORGANIZER_PASSWORD_HASH"),
		ServerPort:            port,
		CORSAllowedOrigins:    origins,
		LogLevel:              level,
		Archive:               archive,
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func validateArchive(a ArchiveConfig) error {
	if !a.Enabled() {
		return nil
	}
	var missing []string
	if a.AccountID == "" && a.Endpoint == "" {
		missing = append(missing, "ARCHIVE_ACCOUNT_ID or ARCHIVE_ENDPOINT")
	}
	if a.AccessKeyID == "" {
		missing = append(missing, "ARCHIVE_ACCESS_KEY_ID")
	}
	if a.SecretAccessKey == "" {
		missing = append(missing, "ARCHIVE_SECRET_ACCESS_KEY")
	}
	if a.BucketName == "" {
		missing = append(missing, "ARCHIVE_BUCKET")
	}
	if a.PublicBaseURL == "" {
		missing = append(missing, "ARCHIVE_PUBLIC_BASE_URL")
	}
	if len(missing) > 0 {
		return errors.New("incomplete archive configuration, missing: " + strings.Join(missing, ", "))
	}
	return nil
}
