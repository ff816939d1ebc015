package algorand

import (
	"context"
	"fmt"

	"ticketflow-ledger-backend/logger"

	"github.com/algorand/go-algorand-sdk/client/algod"
	"github.com/algorand/go-algorand-sdk/crypto"
	"github.com/algorand/go-algorand-sdk/mnemonic"
	"github.com/algorand/go-algorand-sdk/transaction"
)

type Algo interface {
	GenerateAccount() (*Account, error)
	Send(context.Context, *Account, *Account, uint64) error
	Seed(context.Context, *Account) error
}

type algo struct {
	treasury     *Account
	apiAddress   string
	apiKey       string
	amountFactor uint64
	minFee       uint64
	seedAlgo     uint64
}

func New(treasury *Account, apiAddress, apiKey string, amountFactor, minFee, seedAlgo uint64) Algo {
	return &algo{
		treasury:     treasury,
		apiAddress:   apiAddress,
		apiKey:       apiKey,
		amountFactor: amountFactor,
		minFee:       minFee,
		seedAlgo:     seedAlgo,
	}
}

// Send moves amount (in ledger units, scaled by the amount factor) from one
// custodial account to another. The transaction is signed with the sender's
// passphrase, so an account missing its passphrase cannot spend.
func (a *algo) Send(ctx context.Context, from, to *Account, amount uint64) error {
	var headers []*algod.Header
	headers = append(headers, &algod.Header{Key: "X-API-Key", Value: a.apiKey})
	algodClient, err := algod.MakeClientWithHeaders(a.apiAddress, "", headers)
	if err != nil {
		return fmt.Errorf("send: error connecting to algo: %w", err)
	}

	txParams, err := algodClient.SuggestedParams()
	if err != nil {
		return fmt.Errorf("send: error getting suggested tx params: %w", err)
	}

	microAlgos := amount * a.amountFactor
	note := []byte(fmt.Sprintf("Transferring %d from %s", amount, from.AccountAddress))
	genID := txParams.GenesisID
	genHash := txParams.GenesisHash
	firstValidRound := txParams.LastRound
	lastValidRound := firstValidRound + 1000

	txn, err := transaction.MakePaymentTxnWithFlatFee(from.AccountAddress, to.AccountAddress, a.minFee, microAlgos, firstValidRound, lastValidRound, note, "", genID, genHash)
	if err != nil {
		return fmt.Errorf("send: error creating transaction: %w", err)
	}

	privateKey, err := mnemonic.ToPrivateKey(from.SecurityPassphrase)
	if err != nil {
		return fmt.Errorf("send: error getting private key from mnemonic: %w", err)
	}

	txId, bytes, err := crypto.SignTransaction(privateKey, txn)
	if err != nil {
		return fmt.Errorf("send: failed to sign transaction: %w", err)
	}
	logger.Infof(ctx, "Signed txid: %s", txId)

	txHeaders := append([]*algod.Header{}, &algod.Header{Key: "Content-Type", Value: "application/x-binary"})
	sendResponse, err := algodClient.SendRawTransaction(bytes, txHeaders...)
	if err != nil {
		return fmt.Errorf("send: failed to send transaction: %w", err)
	}
	logger.Infof(ctx, "send: submitted transaction %s", sendResponse.TxID)

	waitForConfirmation(ctx, algodClient, sendResponse.TxID)

	return nil
}

// Seed funds a freshly generated account from the treasury so it can pay
// transaction fees.
func (a *algo) Seed(ctx context.Context, to *Account) error {
	err := a.Send(ctx, a.treasury, to, a.seedAlgo)
	if err != nil {
		return fmt.Errorf("seed: error funding account %s: %w", to.AccountAddress, err)
	}
	return nil
}

func (a *algo) GenerateAccount() (*Account, error) {
	account := crypto.GenerateAccount()
	paraphrase, err := mnemonic.FromPrivateKey(account.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("generateAccount: error generating account: %w", err)
	}

	return &Account{
		AccountAddress:     account.Address.String(),
		PrivateKey:         string(account.PrivateKey),
		SecurityPassphrase: paraphrase,
	}, nil
}

// Function that waits for a given txId to be confirmed by the network
func waitForConfirmation(ctx context.Context, algodClient algod.Client, txID string) {
	for {
		pt, err := algodClient.PendingTransactionInformation(txID)
		if err != nil {
			logger.Infof(ctx, "waiting for confirmation... (pool error, if any): %s", err)
			continue
		}
		if pt.ConfirmedRound > 0 {
			logger.Infof(ctx, "Transaction "+pt.TxID+" confirmed in round %d", pt.ConfirmedRound)
			break
		}
		nodeStatus, err := algodClient.Status()
		if err != nil {
			logger.Warnf(ctx, "error getting algod status: %s", err)
			return
		}
		algodClient.StatusAfterBlock(nodeStatus.LastRound + 1)
	}
}
