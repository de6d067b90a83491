package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets, collaborator URLs)
// - default: Values common across all environments (timezone, timeout, pool sizes, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Booking      BookingConfig
	SlotOracle   SlotOracleConfig
	Messaging    MessagingConfig
	Notification NotificationConfig
	ManageToken  ManageTokenConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"5"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// empty disables the rotated file sink
	FilePath       string `envconfig:"LOG_FILE_PATH"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"28"`
}

const (
	CommitModeTransaction = "transaction"
	CommitModeSaga        = "saga"
)

type BookingConfig struct {
	CommitMode     string        `envconfig:"BOOKING_COMMIT_MODE" default:"transaction"`
	CodeAttempts   int           `envconfig:"BOOKING_CODE_ATTEMPTS" default:"3"`
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type SlotOracleConfig struct {
	BaseURL string        `envconfig:"SLOT_ORACLE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SLOT_ORACLE_TIMEOUT" default:"3s"`
}

const (
	MessagingDriverLog   = "log"
	MessagingDriverNATS  = "nats"
	MessagingDriverKafka = "kafka"
)

type MessagingConfig struct {
	Driver       string   `envconfig:"MESSAGING_DRIVER" default:"log"`
	NATSURL      string   `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	EventSubject string   `envconfig:"MESSAGING_EVENT_SUBJECT" default:"reservations.created"`
	EmailSubject string   `envconfig:"MESSAGING_EMAIL_SUBJECT" default:"notifications.email"`
}

type NotificationConfig struct {
	SenderAddress     string        `envconfig:"NOTIFY_SENDER_ADDRESS" default:"reservations@example.com"`
	PostCommitTimeout time.Duration `envconfig:"POSTCOMMIT_TIMEOUT" default:"10s"`
}

type ManageTokenConfig struct {
	Secret string        `envconfig:"MANAGE_TOKEN_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"MANAGE_TOKEN_TTL" default:"720h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Booking.CommitMode {
	case CommitModeTransaction, CommitModeSaga:
	default:
		return fmt.Errorf("invalid BOOKING_COMMIT_MODE %q", c.Booking.CommitMode)
	}
	switch c.Messaging.Driver {
	case MessagingDriverLog, MessagingDriverNATS, MessagingDriverKafka:
	default:
		return fmt.Errorf("invalid MESSAGING_DRIVER %q", c.Messaging.Driver)
	}
	if c.Booking.CodeAttempts < 1 {
		return fmt.Errorf("BOOKING_CODE_ATTEMPTS must be at least 1")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			CommitMode:     CommitModeTransaction,
			CodeAttempts:   3,
			IdempotencyTTL: 24 * time.Hour,
		},
		SlotOracle: SlotOracleConfig{
			BaseURL: "http://localhost:18080",
			Timeout: time.Second,
		},
		Messaging: MessagingConfig{
			Driver:       MessagingDriverLog,
			EventSubject: "reservations.created",
			EmailSubject: "notifications.email",
		},
		Notification: NotificationConfig{
			SenderAddress:     "reservations@example.com",
			PostCommitTimeout: 5 * time.Second,
		},
		ManageToken: ManageTokenConfig{
			Secret: "test-manage-token-secret",
			TTL:    time.Hour,
		},
	}
}
