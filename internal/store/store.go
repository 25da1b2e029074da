package store

import (
	"errors"                     // Sentinel errors
	"sync"                       // Mutex protecting the tables
	"walletlink/internal/domain" // Importing domain models

	"github.com/google/uuid" // Opaque session token generation
)

// Errors returned by Store operations
var (
	ErrUsernameTaken   = errors.New("username already taken")           // Registration conflict
	ErrBadCredentials  = errors.New("invalid username or password")     // Unknown user or wrong password
	ErrAccountNotFound = errors.New("account not found")                // No account for username
	ErrWalletNotLinked = errors.New("no account linked to wallet")      // No index entry for address
	ErrWalletClaimed   = errors.New("wallet linked to another account") // Address held by a different account
	ErrSessionNotFound = errors.New("session token not found")          // Unknown or stale token
)

// Store owns the three in-memory tables: accounts keyed by username,
// the wallet index keyed by address, and session tokens keyed by token.
// One lock guards all three since Account and the wallet index must
// change together. All state is volatile; a restart discards everything.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account // username -> account (owning table)
	wallets  map[string]string          // eth address -> username (derived index)
	sessions map[string]string          // session token -> username
}

// New constructs an empty Store. Build one at process start and pass it
// by reference to the handlers; there is no package-level instance.
func New() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		wallets:  make(map[string]string),
		sessions: make(map[string]string),
	}
}

// CreateAccount registers a new account with an empty wallet address.
// Returns ErrUsernameTaken if the username is already registered.
func (s *Store) CreateAccount(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[username]; exists {
		return ErrUsernameTaken
	}
	s.accounts[username] = &domain.Account{Username: username, Password: password}
	return nil
}

// Authenticate checks the supplied credentials by exact string match and
// returns a copy of the account on success. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *Store) Authenticate(username, password string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, exists := s.accounts[username]
	if !exists || acct.Password != password {
		return domain.Account{}, ErrBadCredentials
	}
	return *acct, nil
}

// IssueSession generates a fresh opaque token for the account and records
// it. Tokens never expire; multiple tokens may reference the same account.
func (s *Store) IssueSession(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = username
	return token
}

// AccountBySession resolves a session token to a copy of its account.
// Returns ErrSessionNotFound for tokens this process never issued.
func (s *Store) AccountBySession(token string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, exists := s.sessions[token]
	if !exists {
		return domain.Account{}, ErrSessionNotFound
	}
	acct, exists := s.accounts[username]
	if !exists {
		return domain.Account{}, ErrSessionNotFound
	}
	return *acct, nil
}

// LinkWallet associates a verified wallet address with the named account
// and updates the wallet index. Relinking the same account to a new
// address overwrites the field and removes the old index entry, so the
// previous address no longer resolves. An address already held by a
// different account is rejected with ErrWalletClaimed.
func (s *Store) LinkWallet(username, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, exists := s.accounts[username]
	if !exists {
		return ErrAccountNotFound
	}
	if owner, claimed := s.wallets[address]; claimed && owner != username {
		return ErrWalletClaimed
	}
	if acct.EthAddress != "" && acct.EthAddress != address {
		delete(s.wallets, acct.EthAddress)
	}
	acct.EthAddress = address
	s.wallets[address] = username
	return nil
}

// AccountByWallet resolves a wallet address to a copy of the account that
// currently claims it. Returns ErrWalletNotLinked if no account does.
func (s *Store) AccountByWallet(address string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, exists := s.wallets[address]
	if !exists {
		return domain.Account{}, ErrWalletNotLinked
	}
	acct, exists := s.accounts[username]
	if !exists {
		return domain.Account{}, ErrWalletNotLinked
	}
	return *acct, nil
}
