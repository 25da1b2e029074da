package walletauth

import (
	"sync" // Mutex protecting the activity map
	"time" // Timestamps for wallet activity
)

// Activity records when a wallet was first and last seen presenting a
// valid bearer, and how many requests it has made. Observability only;
// no request decision reads this.
type Activity struct {
	FirstSeen time.Time // First verified request from this wallet
	LastSeen  time.Time // Most recent verified request
	Requests  int       // Number of verified requests
}

// Registry tracks per-wallet activity across the process lifetime.
type Registry struct {
	mu      sync.Mutex
	wallets map[string]*Activity // wallet address -> activity
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{wallets: make(map[string]*Activity)}
}

// Touch records a verified request from the given wallet address.
func (r *Registry) Touch(address string) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	act, exists := r.wallets[address]
	if !exists {
		act = &Activity{FirstSeen: now}
		r.wallets[address] = act
	}
	act.LastSeen = now
	act.Requests++
}

// Lookup returns a copy of the activity for a wallet address.
func (r *Registry) Lookup(address string) (Activity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	act, exists := r.wallets[address]
	if !exists {
		return Activity{}, false
	}
	return *act, true
}
