package api

import (
	"net/http"                   // HTTP status codes
	"walletlink/internal/engine" // Transaction relay client
	"walletlink/internal/store"  // Session resolution

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging for upstream failures
)

// Request struct for relay endpoints
type EngineRequest struct {
	AuthToken string `json:"authToken"` // Session token from login
}

// ClaimERC20Handler forwards a fixed-amount token claim to the relay for
// the session's linked wallet.
func ClaimERC20Handler(st *store.Store, eng *engine.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EngineRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.AuthToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid auth token"})
			return
		}
		// Resolve the session before touching the relay
		acct, err := st.AccountBySession(req.AuthToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid auth token"})
			return
		}
		// A claim needs somewhere to go
		if acct.EthAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No wallet linked to this account"})
			return
		}
		// Forward the claim and pass the relay's response through
		raw, err := eng.ClaimTo(c.Request.Context(), acct.EthAddress)
		if err != nil {
			// Cause is logged, caller gets a generic message
			logrus.WithError(err).Warn("erc20 claim failed")
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error claiming ERC20"})
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	}
}

// GetERC20BalanceHandler queries the relay for the session's linked
// wallet balance. No caching: every call is a live upstream round trip.
func GetERC20BalanceHandler(st *store.Store, eng *engine.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EngineRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.AuthToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid auth token"})
			return
		}
		// Resolve the session before touching the relay
		acct, err := st.AccountBySession(req.AuthToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid auth token"})
			return
		}
		// A balance query needs a linked wallet
		if acct.EthAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No wallet linked to this account"})
			return
		}
		// Forward the query and pass the relay's response through
		raw, err := eng.BalanceOf(c.Request.Context(), acct.EthAddress)
		if err != nil {
			// Cause is logged, caller gets a generic message
			logrus.WithError(err).Warn("erc20 balance query failed")
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error retrieving ERC20 balance"})
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	}
}
