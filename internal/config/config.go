package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port           int      `yaml:"port"`
	GinMode        string   `yaml:"gin_mode"`
	PublicMenuBase string   `yaml:"public_menu_base_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ServerConfig struct {
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type CacheConfig struct {
	CafesTTL string `yaml:"cafes_ttl"`
	MenuTTL  string `yaml:"menu_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	Timeout  string `yaml:"timeout"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Cache    CacheConfig    `yaml:"cache"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
}

type Config struct {
	Port            string
	GinMode         string
	PublicMenuBase  string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	OTP_TTL         time.Duration
	OTP_Length      int
	CacheCafesTTL   time.Duration
	CacheMenuTTL    time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFrom        string
	MailTimeout     time.Duration
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func duration(name, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

func Load(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{
		Port:           fmt.Sprintf("%d", configFile.App.Port),
		GinMode:        configFile.App.GinMode,
		PublicMenuBase: configFile.App.PublicMenuBase,
		AllowedOrigins: configFile.App.AllowedOrigins,
		DSN:            env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:      env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:  env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:        configFile.Redis.DB,
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      configFile.JWT.Issuer,
		OTP_Length:     configFile.OTP.Length,
		SMTPHost:       env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:       configFile.SMTP.Port,
		SMTPUsername:   env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:   env("SMTP_PASSWORD", configFile.SMTP.Password),
		MailFrom:       configFile.SMTP.From,
		TwilioSID:      env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:    env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:     configFile.Twilio.FromNumber,
	}

	if cfg.TokenTTL, err = duration("jwt.ttl", configFile.JWT.TTL, 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.OTP_TTL, err = duration("otp.ttl", configFile.OTP.TTL, 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.CacheCafesTTL, err = duration("cache.cafes_ttl", configFile.Cache.CafesTTL, 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.CacheMenuTTL, err = duration("cache.menu_ttl", configFile.Cache.MenuTTL, time.Minute); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = duration("server.read_timeout", configFile.Server.ReadTimeout, 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = duration("server.write_timeout", configFile.Server.WriteTimeout, 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = duration("server.shutdown_timeout", configFile.Server.ShutdownTimeout, 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.MailTimeout, err = duration("smtp.timeout", configFile.SMTP.Timeout, 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.OTP_Length == 0 {
		cfg.OTP_Length = 6
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
