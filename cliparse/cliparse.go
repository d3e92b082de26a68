package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	RPCURL          string
	ContractAddress string
	ChainID         int64
	OperatorKey     string
	ModerationSalt  string
	PollInterval    time.Duration
}

// fileConfig is the YAML shape of Config; durations are strings ("15s").
type fileConfig struct {
	Port            int    `yaml:"port"`
	DatabaseURL     string `yaml:"database_url"`
	DatabaseType    string `yaml:"database_type"`
	RPCURL          string `yaml:"rpc_url"`
	ContractAddress string `yaml:"contract_address"`
	ChainID         int64  `yaml:"chain_id"`
	OperatorKey     string `yaml:"operator_key"`
	ModerationSalt  string `yaml:"moderation_salt"`
	PollInterval    string `yaml:"poll_interval"`
}

// ParseFlags validates flags and fills the configuration from, in order of
// precedence: CLI flags, environment variables (after loading .env if one
// exists), then an optional YAML config file.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var cfgFile string

	fs := flag.NewFlagSet("rialo-dao", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Moderation database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RPCURL, "rpc", "", "Chain JSON-RPC endpoint")
	fs.StringVar(&cfg.ContractAddress, "contract", "", "Proposal registry contract address")
	fs.Int64Var(&cfg.ChainID, "chain-id", 0, "Chain ID for transaction signing")
	fs.DurationVar(&cfg.PollInterval, "poll", 0, "Snapshot poll interval")
	fs.StringVar(&cfgFile, "c", "", "YAML config file (lowest precedence)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OperatorKey, "operator-key", "", "Relay operator private key hex (prefer env)")
	fs.StringVar(&cfg.ModerationSalt, "moderation-salt", "", "Moderation key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Load .env into the environment before falling back to it
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = os.Getenv("RPC_URL")
	}
	if cfg.ContractAddress == "" {
		cfg.ContractAddress = os.Getenv("CONTRACT_ADDRESS")
	}
	if cfg.ChainID == 0 {
		if idStr := os.Getenv("CHAIN_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid CHAIN_ID env variable")
			}
			cfg.ChainID = id
		}
	}
	if cfg.PollInterval == 0 {
		if s := os.Getenv("POLL_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid POLL_INTERVAL env variable")
			}
			cfg.PollInterval = d
		}
	}
	if cfg.OperatorKey == "" {
		cfg.OperatorKey = os.Getenv("OPERATOR_KEY")
	}
	if cfg.ModerationSalt == "" {
		cfg.ModerationSalt = os.Getenv("MODERATION_SALT")
	}

	// YAML file fills whatever is still unset
	if cfgFile != "" {
		if err := fillFromFile(&cfg, cfgFile); err != nil {
			return Config{}, err
		}
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = 3320
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = "sqlite"
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = 84532 // Base Sepolia
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 15 * time.Second
	}

	// Required values
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.RPCURL == "" {
		return Config{}, errors.New("RPC URL required (use -rpc or RPC_URL env)")
	}
	if cfg.ContractAddress == "" {
		return Config{}, errors.New("contract address required (use -contract or CONTRACT_ADDRESS env)")
	}
	if cfg.ModerationSalt == "" {
		return Config{}, errors.New("MODERATION_SALT required")
	}

	return cfg, nil
}

func fillFromFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Port == 0 {
		cfg.Port = file.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = file.DatabaseType
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = file.RPCURL
	}
	if cfg.ContractAddress == "" {
		cfg.ContractAddress = file.ContractAddress
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = file.ChainID
	}
	if cfg.PollInterval == 0 && file.PollInterval != "" {
		d, err := time.ParseDuration(file.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid poll_interval in %s: %w", path, err)
		}
		cfg.PollInterval = d
	}
	if cfg.OperatorKey == "" {
		cfg.OperatorKey = file.OperatorKey
	}
	if cfg.ModerationSalt == "" {
		cfg.ModerationSalt = file.ModerationSalt
	}
	return nil
}
