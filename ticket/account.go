package ticket

import (
	"fmt"

	"ticketflow-ledger-backend/algorand"
	"ticketflow-ledger-backend/codec"
	"ticketflow-ledger-backend/constants"
)

func (s *Ticket) fetchAccount(address string) (*algorand.Account, bool, error) {
	path := fmt.Sprintf("%s/%s", s.vault.AccountPath, address)
	secret, err := s.vault.Logical().Read(path)
	if err != nil {
		return nil, false, fmt.Errorf("fetchAccount: could not read account of: %s", address)
	}
	if secret == nil {
		return nil, false, nil
	}

	accountAddress, accountAddressOK := secret.Data[constants.AccountAddress]
	if !accountAddressOK {
		return nil, false, fmt.Errorf("fetchAccount: account address not found")
	}
	passphrase, passphraseOK := secret.Data[constants.SecurityPassphrase]
	if !passphraseOK {
		return nil, false, fmt.Errorf("fetchAccount: security passphrase not found")
	}

	decrypted, err := codec.Decrypt(codec.Key(s.secret), passphrase.(string))
	if err != nil {
		return nil, false, fmt.Errorf("fetchAccount: error decrypting passphrase: %w", err)
	}

	ua := algorand.Account{
		AccountAddress:     accountAddress.(string),
		SecurityPassphrase: string(decrypted),
	}

	return &ua, true, nil
}
