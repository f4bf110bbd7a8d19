package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Log           LogConfig           `mapstructure:"log"`
	Session       SessionConfig       `mapstructure:"session"`
	RateLimiting  RateLimitingConfig  `mapstructure:"rate_limiting"`
	Email         EmailConfig         `mapstructure:"email"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	TLS  struct {
		Enabled  bool   `mapstructure:"enabled"`
		CertFile string `mapstructure:"cert_file"`
		KeyFile  string `mapstructure:"key_file"`
	} `mapstructure:"tls"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SessionConfig holds session cookie and store configuration
type SessionConfig struct {
	// CookieName is the cookie carrying the session ID
	CookieName string `mapstructure:"cookie_name"`
	// IdleTimeout is how long a session lives without requests (default: 30m)
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	// KeyPrefix namespaces session hashes in Redis
	KeyPrefix string `mapstructure:"key_prefix"`
}

// RateLimitingConfig holds rate limiting configuration
type RateLimitingConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// EmailConfig holds email sending configuration
type EmailConfig struct {
	// Provider is the email provider to use: "smtp", "gmail" or "log"
	Provider string `mapstructure:"provider"`
	// SMTP holds the SMTP transport settings
	SMTP EmailSettings `mapstructure:"smtp"`
	// Gmail holds Gmail-specific configuration
	Gmail GmailEmailConfig `mapstructure:"gmail"`
}

// EmailSettings holds the SMTP transport settings. It is read once at
// startup and handed by value to the sender.
type EmailSettings struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ErrIncompleteSettings is returned when EmailSettings is missing a required field.
var ErrIncompleteSettings = errors.New("email settings are incomplete")

// Validate reports every missing field of the SMTP settings. EnableTLS is
// a flag and is never missing.
func (s EmailSettings) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Host) == "" {
		missing = append(missing, "host")
	}
	if s.Port <= 0 {
		missing = append(missing, "port")
	}
	if s.Username == "" {
		missing = append(missing, "username")
	}
	if s.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(s.FromAddress) == "" {
		missing = append(missing, "from_address")
	}
	if strings.TrimSpace(s.FromName) == "" {
		missing = append(missing, "from_name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteSettings, strings.Join(missing, ", "))
	}
	return nil
}

// GmailEmailConfig holds Gmail API configuration
type GmailEmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID string `mapstructure:"client_id"`
	// ClientSecret for OAuth2 token-based auth
	ClientSecret string `mapstructure:"client_secret"`
	// RefreshToken for OAuth2 token-based auth
	RefreshToken string `mapstructure:"refresh_token"`
	// SenderAddress is the "From" email address
	SenderAddress string `mapstructure:"sender_address"`
	// SenderName is the display name for the sender
	SenderName string `mapstructure:"sender_name"`
}

// NotificationsConfig holds settings for the notification trigger endpoints
type NotificationsConfig struct {
	// RequiredRole is the session role allowed to trigger notifications
	RequiredRole string `mapstructure:"required_role"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/startickets")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STARTICKETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.tls.enabled", false)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Session defaults
	v.SetDefault("session.cookie_name", "startickets_session")
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("session.key_prefix", "session:")

	v.SetDefault("rate_limiting.enabled", true)
	v.SetDefault("rate_limiting.limit", 30)
	v.SetDefault("rate_limiting.window", "1m")

	// Email defaults
	v.SetDefault("email.provider", "smtp")
	v.SetDefault("email.smtp.host", "")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.enable_tls", true)
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.from_address", "")
	v.SetDefault("email.smtp.from_name", "StarTickets")
	v.SetDefault("email.gmail.sender_address", "")
	v.SetDefault("email.gmail.sender_name", "StarTickets")

	v.SetDefault("notifications.required_role", "Admin")
}
