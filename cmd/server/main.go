package main

import (
	"log"                            // log package is needed for logging
	"walletlink/internal/api"        // Custom package for API handlers
	"walletlink/internal/config"     // Custom package for configuration
	"walletlink/internal/engine"     // Custom package for the relay client
	"walletlink/internal/middleware" // Custom package for middleware
	"walletlink/internal/store"      // Custom package for the in-memory tables
	"walletlink/internal/walletauth" // Custom package for wallet-auth verification

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// All account, wallet-index, and session state lives in this one
	// store; it is volatile and discarded on restart.
	st := store.New()

	// Verifier and activity registry for gateway-issued wallet bearers
	if cfg.AuthDomain == "" || cfg.AuthSecret == "" {
		logrus.Fatal("WALLET_AUTH_DOMAIN and WALLET_AUTH_SECRET must be set")
	}
	verifier := walletauth.NewVerifier(cfg.AuthDomain, cfg.AuthSecret)
	registry := walletauth.NewRegistry()

	// Relay client under the operator wallet and secret
	if cfg.EngineURL == "" {
		logrus.Fatal("ENGINE_URL must be set")
	}
	eng := engine.New(cfg.EngineURL, cfg.ChainID, cfg.ERC20Contract, cfg.BackendWallet, cfg.EngineSecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Browser form flow calls from another origin
	r.Use(middleware.CORS())

	// User routes, guarded by the wallet-auth middleware. The middleware
	// only populates context; register and login stay anonymous.
	userGroup := r.Group("/user")
	userGroup.Use(middleware.WalletAuth(verifier, registry))
	userGroup.POST("/register", api.RegisterHandler(st))         // Registration endpoint
	userGroup.POST("/login", api.LoginHandler(st))               // Login endpoint
	userGroup.POST("/link-wallet", api.LinkWalletHandler(st))    // Wallet linking endpoint
	userGroup.POST("/get-user-data", api.GetUserDataHandler(st)) // Reverse wallet lookup endpoint

	// Relay routes, authenticated by session token in the request body
	engineGroup := r.Group("/engine")
	engineGroup.POST("/claim-erc20", api.ClaimERC20Handler(st, eng))            // Token claim endpoint
	engineGroup.POST("/get-erc20-balance", api.GetERC20BalanceHandler(st, eng)) // Balance query endpoint

	log.Println("Server running on " + cfg.AppPort + " (" + cfg.BackendURL + ")") // Log server start
	r.Run(":" + cfg.AppPort)                                                      // Start the server on port cfg.AppPort
}
