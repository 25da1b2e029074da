package api

import (
	"errors"                         // Sentinel error matching
	"net/http"                       // HTTP status codes
	"walletlink/internal/middleware" // Context keys set by the outer middleware
	"walletlink/internal/store"      // Account / wallet / session tables

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username"` // Username, required
	Password string `json:"password"` // Password, required
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username"` // Username, required
	Password string `json:"password"` // Password, required
}

// Response struct for login
type LoginResponse struct {
	Message    string `json:"message"`    // Human-readable confirmation
	EthAddress string `json:"ethAddress"` // Linked wallet address, possibly empty
	AuthToken  string `json:"authToken"`  // Opaque session token
}

// Request struct for linking a wallet
type LinkWalletRequest struct {
	Username string `json:"username"` // Account to link the wallet to
}

// Request struct for the reverse wallet lookup
type UserDataRequest struct {
	WalletAddress string `json:"walletAddress"` // Wallet address to look up
}

// RegisterHandler creates a new account from a username/password pair
func RegisterHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			// Missing body or missing field, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		// Attempt to create the account
		if err := st.CreateAccount(req.Username, req.Password); err != nil {
			// Duplicate username, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates an account and issues a session token
func LoginHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			// Missing body or missing field, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		// Check credentials against the account table
		acct, err := st.Authenticate(req.Username, req.Password)
		if err != nil {
			// Unknown username or wrong password, no token issued
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
			return
		}
		token := st.IssueSession(acct.Username) // Issue a fresh session token
		// Return the token and current wallet address
		c.JSON(http.StatusOK, LoginResponse{
			Message:    "Login successful",
			EthAddress: acct.EthAddress,
			AuthToken:  token,
		})
	}
}

// LinkWalletHandler associates the caller's verified wallet address with
// an account. The wallet address comes from the gateway bearer parsed by
// the outer middleware, never from the request body.
func LinkWalletHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetString(middleware.WalletAddressKey) // Verified wallet address, if any
		if address == "" {
			// No verified wallet session, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access."})
			return
		}
		var req LinkWalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required."})
			return
		}
		// Attempt the link; relinking the same account overwrites its address
		if err := st.LinkWallet(req.Username, address); err != nil {
			// Address held by a different account
			if errors.Is(err, store.ErrWalletClaimed) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Wallet already linked to another user."})
				return
			}
			// Unknown username
			c.JSON(http.StatusBadRequest, gin.H{"message": "User does not exist."})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Ethereum address linked successfully to user!"})
	}
}

// GetUserDataHandler resolves a wallet address back to the account that
// claims it, returning the credential-free profile view.
func GetUserDataHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserDataRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.WalletAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Wallet address is required"})
			return
		}
		// Look up the account through the wallet index
		acct, err := st.AccountByWallet(req.WalletAddress)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No user found for this wallet"})
			return
		}
		// Return the public view only; the stored password never leaves
		c.JSON(http.StatusOK, gin.H{
			"message": "User data retrieved successfully",
			"user":    acct.Profile(),
		})
	}
}
