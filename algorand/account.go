package algorand

// Account is a custodial Algorand account. The passphrase is what signs;
// it is stored encrypted in Vault and only decrypted for the duration of a
// transfer.
type Account struct {
	AccountAddress     string `json:"account_address,omitempty"`
	PrivateKey         string `json:"private_key,omitempty"`
	SecurityPassphrase string `json:"security_passphrase,omitempty"`
}
