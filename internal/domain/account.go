package domain

// Account Model
type Account struct {
	Username   string `json:"username"`   // Unique username, immutable once registered
	Password   string `json:"-"`          // Opaque credential, never serialized outward
	EthAddress string `json:"ethAddress"` // Linked wallet address, empty until linked
}

// Profile is the outward-facing view of an Account.
// It is the only account shape handlers may return to clients.
type Profile struct {
	Username   string `json:"username"`   // Account username
	EthAddress string `json:"ethAddress"` // Linked wallet address, possibly empty
}

// Profile returns the credential-free view of the account.
func (a Account) Profile() Profile {
	return Profile{Username: a.Username, EthAddress: a.EthAddress}
}
