package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from a config file,
// environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	DatabaseName    string
	JWTSecret       string
	AuthStrategy    string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	AdminEmails     []string
	Notify          NotifyConfig
}

// NotifyConfig configures delivery of selection status notifications.
type NotifyConfig struct {
	Provider     string
	Workers      int
	QueueSize    int
	Timeout      time.Duration
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SenderEmail  string
	WebhookURL   string
	AMQPURL      string
	AMQPExchange string
	KafkaBrokers []string
	KafkaTopic   string
}

const (
	AuthStrategyJWT  = "jwt"
	AuthStrategyHMAC = "hmac"

	NotifierLog     = "log"
	NotifierSMTP    = "smtp"
	NotifierWebhook = "webhook"
	NotifierAMQP    = "amqp"
	NotifierKafka   = "kafka"

	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

const (
	defaultRunAddress      = ":8080"
	defaultDatabaseName    = "servicebooking"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultNotifyWorkers   = 2
	defaultNotifyQueueSize = 64
	defaultNotifyTimeout   = 10 * time.Second
	defaultSMTPPort        = 587
	defaultAMQPExchange    = "booking.exchange"
	defaultKafkaTopic      = "booking.status"
)

// Load parses configuration from flags, environment variables and the
// optional file named by CONFIG_FILE.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		fileLookup, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		lookup = layered(lookup, fileLookup)
	}

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		DatabaseName:    getString(lookup, "DATABASE_NAME", defaultDatabaseName),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AuthStrategy:    getString(lookup, "AUTH_STRATEGY", AuthStrategyJWT),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		AdminEmails:     getList(lookup, "ADMIN_EMAILS"),
		Notify: NotifyConfig{
			Provider:     getString(lookup, "NOTIFIER", NotifierLog),
			Workers:      getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
			QueueSize:    getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
			Timeout:      getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
			SMTPHost:     getString(lookup, "SMTP_HOST", ""),
			SMTPPort:     getInt(lookup, "SMTP_PORT", defaultSMTPPort),
			SMTPUser:     getString(lookup, "SMTP_USER", ""),
			SMTPPassword: getString(lookup, "SMTP_PASSWORD", ""),
			SenderEmail:  getString(lookup, "SENDER_EMAIL", ""),
			WebhookURL:   getString(lookup, "NOTIFY_WEBHOOK_URL", ""),
			AMQPURL:      getString(lookup, "AMQP_URL", ""),
			AMQPExchange: getString(lookup, "AMQP_EXCHANGE", defaultAMQPExchange),
			KafkaBrokers: getList(lookup, "KAFKA_BROKERS"),
			KafkaTopic:   getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		},
	}

	fs := flag.NewFlagSet("servicebooking", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		notifyTimeoutStr   = cfg.Notify.Timeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN or MongoDB URL")
	fs.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "MongoDB database name")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AuthStrategy, "auth-strategy", cfg.AuthStrategy, "Token strategy: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&cfg.Notify.Provider, "notifier", cfg.Notify.Provider, "Status notifier: log, smtp, webhook, amqp or kafka")
	fs.IntVar(&cfg.Notify.Workers, "notify-workers", cfg.Notify.Workers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.Notify.QueueSize, "notify-queue", cfg.Notify.QueueSize, "Pending notification queue size")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Timeout of a single notification delivery")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.Notify.Timeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Notify.Workers <= 0 {
		cfg.Notify.Workers = defaultNotifyWorkers
	}

	if cfg.Notify.QueueSize <= 0 {
		cfg.Notify.QueueSize = defaultNotifyQueueSize
	}

	if cfg.Notify.Timeout <= 0 {
		cfg.Notify.Timeout = defaultNotifyTimeout
	}

	if cfg.Notify.SMTPPort <= 0 {
		cfg.Notify.SMTPPort = defaultSMTPPort
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	switch cfg.AuthStrategy {
	case AuthStrategyJWT, AuthStrategyHMAC:
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.AuthStrategy)
	}

	if err := cfg.Notify.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseDriver derives the storage backend from the database URI scheme.
func (c *Config) DatabaseDriver() string {
	if strings.HasPrefix(c.DatabaseURI, "mongodb://") || strings.HasPrefix(c.DatabaseURI, "mongodb+srv://") {
		return DriverMongo
	}
	return DriverPostgres
}

// IsAdminEmail reports whether registrations with email become administrators.
func (c *Config) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

func (n NotifyConfig) validate() error {
	switch n.Provider {
	case NotifierLog:
	case NotifierSMTP:
		if n.SMTPHost == "" || n.SenderEmail == "" {
			return fmt.Errorf("smtp notifier requires SMTP_HOST and SENDER_EMAIL")
		}
	case NotifierWebhook:
		if n.WebhookURL == "" {
			return fmt.Errorf("webhook notifier requires NOTIFY_WEBHOOK_URL")
		}
	case NotifierAMQP:
		if n.AMQPURL == "" {
			return fmt.Errorf("amqp notifier requires AMQP_URL")
		}
	case NotifierKafka:
		if len(n.KafkaBrokers) == 0 {
			return fmt.Errorf("kafka notifier requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown notifier %q", n.Provider)
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(lookup envLookup, key string) []string {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
