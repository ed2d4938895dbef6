package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	SendGrid SendGridConfig `mapstructure:"sendgrid"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Program  ProgramConfig  `mapstructure:"program"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// AllowedOrigins lists the onboarding form origins allowed by CORS.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// SendGridConfig configures the email transport. An empty APIKey disables
// delivery; programs are still generated and stored.
type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
	ReplyTo   string `mapstructure:"reply_to"`
	BaseURL   string `mapstructure:"base_url"`
}

type DeliveryConfig struct {
	Concurrency  int    `mapstructure:"concurrency"`
	SendHourUTC  int    `mapstructure:"send_hour_utc"`
	Brand        string `mapstructure:"brand"`
	Signature    string `mapstructure:"signature"`
	ContactEmail string `mapstructure:"contact_email"`
}

type ProgramConfig struct {
	// TablesFile optionally overlays the built-in lookup tables with YAML.
	TablesFile string `mapstructure:"tables_file"`
	Workers    int    `mapstructure:"workers"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // "development" or "production"
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, sendgrid.api_key -> SENDGRID_API_KEY
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_program")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.presign_expiry", "24h")
	v.SetDefault("sendgrid.api_key", "")
	v.SetDefault("sendgrid.from_email", "support@harmonizedfitness.com")
	v.SetDefault("sendgrid.from_name", "Harmonized Fitness")
	v.SetDefault("sendgrid.reply_to", "")
	v.SetDefault("sendgrid.base_url", "https://api.sendgrid.com")
	v.SetDefault("delivery.concurrency", 4)
	v.SetDefault("delivery.send_hour_utc", 5)
	v.SetDefault("delivery.brand", "Harmonized Fitness")
	v.SetDefault("delivery.signature", "Your coach")
	v.SetDefault("delivery.contact_email", "")
	v.SetDefault("program.tables_file", "")
	v.SetDefault("program.workers", 14)
	v.SetDefault("log.mode", "development")

	// A missing config file is fine; env vars and defaults still apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
