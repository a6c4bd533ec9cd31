package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig holds the tunable rules of the time-accounting engine.
type EngineConfig struct {
	// MaxDailyWorkMinutes is the ceiling beyond which a worked day is
	// flagged as an excessive_hours anomaly.
	MaxDailyWorkMinutes int

	// MinResolutionNoteLen is the minimum trimmed length accepted for
	// anomaly resolution notes. Clients may enforce stricter minimums.
	MinResolutionNoteLen int

	// MinDeclarationNoteLen applies to manual attendance declarations.
	MinDeclarationNoteLen int

	// LeaveApprovalStages is the default number of approval stages for
	// leave requests (1 to 3).
	LeaveApprovalStages int
}

func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timecore"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	maxDailyMinutes, err := strconv.Atoi(getEnv("ANOMALY_MAX_DAILY_MINUTES", "720"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANOMALY_MAX_DAILY_MINUTES: %w", err)
	}
	minResolutionNoteLen, err := strconv.Atoi(getEnv("MIN_RESOLUTION_NOTE_LEN", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_RESOLUTION_NOTE_LEN: %w", err)
	}
	minDeclarationNoteLen, err := strconv.Atoi(getEnv("MIN_DECLARATION_NOTE_LEN", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_DECLARATION_NOTE_LEN: %w", err)
	}
	leaveApprovalStages, err := strconv.Atoi(getEnv("LEAVE_APPROVAL_STAGES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_APPROVAL_STAGES: %w", err)
	}

	config.Engine = EngineConfig{
		MaxDailyWorkMinutes:   maxDailyMinutes,
		MinResolutionNoteLen:  minResolutionNoteLen,
		MinDeclarationNoteLen: minDeclarationNoteLen,
		LeaveApprovalStages:   leaveApprovalStages,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Engine.MaxDailyWorkMinutes <= 0 || c.Engine.MaxDailyWorkMinutes > 1440 {
		return fmt.Errorf("ANOMALY_MAX_DAILY_MINUTES must be between 1 and 1440")
	}
	if c.Engine.MinResolutionNoteLen < 1 {
		return fmt.Errorf("MIN_RESOLUTION_NOTE_LEN must be at least 1")
	}
	if c.Engine.MinDeclarationNoteLen < 1 {
		return fmt.Errorf("MIN_DECLARATION_NOTE_LEN must be at least 1")
	}
	if c.Engine.LeaveApprovalStages < 1 || c.Engine.LeaveApprovalStages > 3 {
		return fmt.Errorf("LEAVE_APPROVAL_STAGES must be between 1 and 3")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
