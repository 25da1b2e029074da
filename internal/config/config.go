package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	BackendURL    string // Public-facing backend URL
	AuthDomain    string // Wallet-auth gateway domain (token audience)
	AuthSecret    string // Wallet-auth gateway signing secret
	EngineURL     string // Transaction relay base URL
	BackendWallet string // Operator wallet address used for relay calls
	EngineSecret  string // Operator API secret for the relay
	ChainID       string // Target chain identifier
	ERC20Contract string // Target ERC-20 contract address
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       getEnv("APP_PORT", "8000"),                     // Application port
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:8000"), // Public-facing backend URL
		AuthDomain:    os.Getenv("WALLET_AUTH_DOMAIN"),                // Wallet-auth gateway domain
		AuthSecret:    os.Getenv("WALLET_AUTH_SECRET"),                // Wallet-auth gateway signing secret
		EngineURL:     os.Getenv("ENGINE_URL"),                        // Transaction relay base URL
		BackendWallet: getEnv("BACKEND_WALLET_ADDRESS",
			"0x41252d22CdB26E3207689D077FB3c535FB57a133"), // Operator wallet address
		EngineSecret: os.Getenv("ENGINE_SECRET_KEY"), // Operator API secret
		ChainID:      getEnv("CHAIN_ID", "5"),        // Target chain identifier
		ERC20Contract: getEnv("ERC20_CONTRACT_ADDRESS",
			"0x450b943729Ddba196Ab58b589Cea545551DF71CC"), // Target ERC-20 contract
		IsProd: os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// getEnv returns the environment variable value or a fallback if unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
