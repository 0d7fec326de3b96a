// Package config loads config.yaml, overlaid by environment variables and an
// optional .env file.
package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

// Config mirrors config.yaml. Optional sections are pointers and stay nil
// when absent.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Store selects the backend of the feature collections
	Store *StoreConfig `json:"store" yaml:"store"`

	// Redis is used when store.driver is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for collection change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Mail configuration for password reset links
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// QRCode configuration for rental listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	CORS *CORSConfig `json:"cors" yaml:"cors"`
}

// SecretKeyConfig holds the HMAC secrets of the token service
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
	Reset   string `json:"reset" yaml:"reset"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	ResetTokenTTL     time.Duration `json:"resetTokenTtl" yaml:"resetTokenTtl"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the key-value backend: "memory", "postgres" or "redis"
type StoreConfig struct {
	Driver    string `json:"driver" yaml:"driver"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// RedisConfig defines the redis connection of the redis store driver
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local", "google" or "nats"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// NATS server URL and subject (for nats provider)
	NATSURL     string `json:"natsUrl" yaml:"natsUrl"`
	NATSSubject string `json:"natsSubject" yaml:"natsSubject"`
}

// MailConfig defines the transactional mail provider
type MailConfig struct {
	// Provider type: "log" or "sendgrid"
	Provider    string `json:"provider" yaml:"provider"`
	APIKey      string `json:"apiKey" yaml:"apiKey"`
	SenderName  string `json:"senderName" yaml:"senderName"`
	SenderEmail string `json:"senderEmail" yaml:"senderEmail"`
	// ResetURL is the client page receiving the reset token as ?token=
	ResetURL string `json:"resetUrl" yaml:"resetUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// RateLimitConfig throttles the public auth endpoints per client IP
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// CORSConfig defines the allowed browser origins
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials"`
	MaxAge           int      `json:"maxAge" yaml:"maxAge"`
}
