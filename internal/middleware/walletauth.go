package middleware

import (
	"strings"                        // String manipulation
	"walletlink/internal/walletauth" // Wallet-auth token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// WalletAddressKey is the gin context key holding the verified wallet
// address for the current request, when one was presented.
const WalletAddressKey = "walletAddress"

// WalletAuth parses an optional Authorization bearer issued by the
// wallet-auth gateway and stores the verified wallet address in the
// request context. It never aborts: register and login are anonymous,
// and handlers that require a wallet check the context themselves.
func WalletAuth(v *walletauth.Verifier, reg *walletauth.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Only bearer credentials are recognized; anything else is ignored
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
			if address, err := v.Verify(tokenStr); err == nil {
				c.Set(WalletAddressKey, address) // Store wallet address in context
				reg.Touch(address)               // Record wallet activity
			}
		}
		c.Next() // Proceed to the next handler
	}
}

// CORS allows the browser form flow to call the API from another origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		// Preflight requests end here
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
