package constants

// Vault secret field names for custodial Algorand accounts.
const (
	AccountAddress     = "account_address"
	PrivateKey         = "private_key"
	SecurityPassphrase = "security_passphrase"
)
