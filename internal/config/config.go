package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ticket-marketplace/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// EthereumConfig holds the chain and ticket contract configuration
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	ContractAddress     string        `mapstructure:"contract_address"`
	PrivateKey          string        `mapstructure:"private_key"`
	GasLimit            uint64        `mapstructure:"gas_limit"`
	StartBlock          uint64        `mapstructure:"start_block"`
	LogStepSize         uint64        `mapstructure:"log_step_size"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
}

// StorageConfig holds the pinning service and IPFS gateway configuration
type StorageConfig struct {
	APIURL       string        `mapstructure:"api_url"`
	APIKey       string        `mapstructure:"api_key"`
	IPFSGateways []string      `mapstructure:"ipfs_gateways"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	MaxUploadBytes int64    `mapstructure:"max_upload_bytes"`
	CORSOrigins    []string `mapstructure:"cors_origins"` // empty allows every origin
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Storage    StorageConfig  `mapstructure:"storage"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 180) // writes wait for the receipt
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.max_upload_bytes", 10*1024*1024) // 10MB
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ethereum.chain_id", domain.HARDHAT_CHAIN_ID)
	v.SetDefault("ethereum.gas_limit", domain.DEFAULT_GAS_LIMIT)
	v.SetDefault("ethereum.log_step_size", 100000)
	v.SetDefault("ethereum.receipt_poll_interval", "500ms")
	v.SetDefault("ethereum.receipt_timeout", "2m")
	v.SetDefault("storage.api_url", domain.DEFAULT_STORAGE_API_URL)
	v.SetDefault("storage.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY, "https://ipfs.io"})
	v.SetDefault("storage.http_timeout", "60s")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)
	v.SetDefault("nats.subject_prefix", "tickets")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ticket-marketplace-api")

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the service cannot start without
func (c *APIConfig) Validate() error {
	if c.Ethereum.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if c.Ethereum.ContractAddress == "" {
		return errors.New("ethereum.contract_address is required")
	}
	if !common.IsHexAddress(c.Ethereum.ContractAddress) {
		return fmt.Errorf("ethereum.contract_address %q is not a hex address", c.Ethereum.ContractAddress)
	}
	if c.Ethereum.ChainID <= 0 {
		return errors.New("ethereum.chain_id must be positive")
	}
	if len(c.Storage.IPFSGateways) == 0 {
		return errors.New("storage.ipfs_gateways must not be empty")
	}
	return nil
}

// configureViper layers config file, env files and TICKET_MARKET_* variables
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("TICKET_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env vars for keys viper already knows about
	bindEnvKeys(v, reflect.TypeOf(APIConfig{}), "")
	return v
}

// bindEnvKeys binds every mapstructure key reachable from t
func bindEnvKeys(v *viper.Viper, t reflect.Type, prefix string) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		switch {
		case tag == "":
			continue
		case tag == ",squash":
			bindEnvKeys(v, field.Type, prefix)
		case field.Type.Kind() == reflect.Struct:
			bindEnvKeys(v, field.Type, prefix+tag+".")
		default:
			_ = v.BindEnv(prefix + tag)
		}
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
