package user

import (
	"fmt"

	"ticketflow-ledger-backend/algorand"
	"ticketflow-ledger-backend/codec"
	"ticketflow-ledger-backend/constants"
)

// saveAccount writes the custodial account to Vault, keyed by its ledger
// address, with the signing passphrase encrypted under the server secret.
func (u *User) saveAccount(a *algorand.Account) error {
	encrypted, err := codec.Encrypt(codec.Key(u.secret), []byte(a.SecurityPassphrase))
	if err != nil {
		return fmt.Errorf("saveAccount: error encrypting passphrase: %w", err)
	}

	path := fmt.Sprintf("%s/%s", u.Vault.AccountPath, a.AccountAddress)
	data := map[string]interface{}{
		constants.AccountAddress:     a.AccountAddress,
		constants.SecurityPassphrase: encrypted,
	}
	_, err = u.Vault.Logical().Write(path, data)
	if err != nil {
		return fmt.Errorf("saveAccount: unable to write to vault: %w", err)
	}

	return nil
}
