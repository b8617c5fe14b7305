package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Auth         AuthConfig      `mapstructure:"auth"`
	AI           AIConfig        `mapstructure:"ai"`
	Storage      StorageConfig   `mapstructure:"storage"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// AuthConfig contains identity verification settings
type AuthConfig struct {
	JWKSURL        string        `mapstructure:"jwks_url"`
	CacheDuration  time.Duration `mapstructure:"cache_duration"`
	DevAuthEnabled bool          `mapstructure:"dev_auth_enabled"`
	DevAuthToken   string        `mapstructure:"dev_auth_token"`
}

// AIConfig contains generative and speech-to-text provider settings
type AIConfig struct {
	OpenAIAPIKey       string        `mapstructure:"openai_api_key"`
	BaseURL            string        `mapstructure:"base_url"`
	ChatModel          string        `mapstructure:"chat_model"`
	TranscribeModel    string        `mapstructure:"transcribe_model"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	TranscribeTimeout  time.Duration `mapstructure:"transcribe_timeout"`
	MaxTranscriptBytes int64         `mapstructure:"max_transcript_bytes"`
}

// StorageConfig contains blob storage settings
type StorageConfig struct {
	Root    string `mapstructure:"root"`
	TempDir string `mapstructure:"temp_dir"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS     bool  `mapstructure:"enable_cors"`
	MaxRequestSize int64 `mapstructure:"max_request_size"`
}
