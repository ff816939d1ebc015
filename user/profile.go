package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ticketflow-ledger-backend/algorand"
	"ticketflow-ledger-backend/ledger"
	"ticketflow-ledger-backend/logger"
	"ticketflow-ledger-backend/model"
	"ticketflow-ledger-backend/response"
	"ticketflow-ledger-backend/store"
	"ticketflow-ledger-backend/twilio"
	"ticketflow-ledger-backend/vault"

	"github.com/go-redis/redis"
	"github.com/pquerna/otp/totp"
)

const (
	profileTable = "User_Profiles"

	otpMessage = "OTP to verify your number at ticketflow is: %s"
	otpSent    = "OTP_SUCCESSFULLY_SENT"
)

var ErrNotFound = errors.New("no record found")

var profileCols = []string{"address", "engagement_score", "loyalty_points", "membership_tier", "phone_country_code", "phone_number", "is_verified"}

func NewUser(algo algorand.Algo, v vault.Vault, secret string) *User {
	return &User{Algo: algo, Vault: v, secret: secret}
}

// User serves the loyalty profile operations.
type User struct {
	Algo   algorand.Algo
	Vault  vault.Vault
	secret string
}

// Create provisions a loyalty profile for a new principal: a custodial
// account is generated, its passphrase is encrypted into Vault, and the
// profile starts at tier one with nothing accrued. When a phone number is
// supplied an OTP is sent for out-of-band verification.
func (u *User) Create(ctx context.Context, db *sql.DB, in *model.UserProfile, sender twilio.Sender, client *redis.Client) (*model.UserProfile, *model.Auth, error) {
	account, err := u.Algo.GenerateAccount()
	if err != nil {
		return nil, nil, fmt.Errorf("create: error generating account: %w", err)
	}

	p := ledger.NewUserProfile(account.AccountAddress)
	p.PhoneCountryCode = in.PhoneCountryCode
	p.PhoneNumber = in.PhoneNumber

	tx, err := db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("create: error begining db transaction: %s", err)
	}

	values := []interface{}{
		p.Address,
		p.EngagementScore,
		p.LoyaltyPoints,
		p.MembershipTier,
		p.PhoneCountryCode,
		p.PhoneNumber,
		p.IsVerified,
	}

	id, err := store.Create(tx, profileTable, profileCols, values)
	if err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf("create: error inserting profile: err: %w", err)
	}
	p.ProfileID = id

	err = u.saveAccount(account)
	if err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf("create: error saving account: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, nil, fmt.Errorf("create: error commiting profile to db: err: %s", err)
	}

	go u.seedAccount(ctx, account)

	auth := &model.Auth{ProfileID: p.ProfileID}
	if p.PhoneNumber != nil {
		if err := u.sendOTP(sender, client, p); err != nil {
			logger.Errorf(ctx, "create: error sending otp: %+v", err)
			return nil, nil, response.SomethingWrong()
		}
		auth.Status = otpSent
	}

	return p, auth, nil
}

func (u *User) seedAccount(ctx context.Context, account *algorand.Account) {
	err := u.Algo.Seed(ctx, account)
	if err != nil {
		logger.Errorf(ctx, "seedAccount: error funding account: %s: err: %+v", account.AccountAddress, err)
	}
}

func (u *User) sendOTP(sender twilio.Sender, client *redis.Client, p *model.UserProfile) error {
	code, err := totp.GenerateCode(u.secret, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sendOTP: unable to generate otp: %s", err)
	}

	phoneNumber := fmt.Sprintf("%s%s", *p.PhoneCountryCode, *p.PhoneNumber)
	sid, err := sender.Send(phoneNumber, fmt.Sprintf(otpMessage, code))
	if err != nil {
		return fmt.Errorf("sendOTP: unable to send otp to: %s: %s", phoneNumber, err)
	}

	err = client.Set(fmt.Sprintf("profile-%d", p.ProfileID), code, time.Minute*5).Err()
	if err != nil {
		return fmt.Errorf("sendOTP: unable to cache otp for profile: %d, sid: %v : %s", p.ProfileID, sid, err)
	}

	return nil
}

// VerifyOTP checks the code sent to the profile's phone and marks the
// profile verified. Verification gates nothing in the ledger itself.
func (u *User) VerifyOTP(ctx context.Context, db *sql.DB, client *redis.Client, profileID int64, code string) error {
	cached, err := client.Get(fmt.Sprintf("profile-%d", profileID)).Result()
	if err == redis.Nil {
		return response.OTPExpired()
	}
	if err != nil {
		return fmt.Errorf("verifyOTP: error reading otp: %w", err)
	}

	if cached != code {
		return response.OTPMismatch()
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("verifyOTP: error begining db transaction: %s", err)
	}

	updatedRows, err := store.Update(tx, profileTable, []string{"is_verified"}, []interface{}{true}, []string{"profile_id"}, []interface{}{profileID})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("verifyOTP: error updating profile: %w", err)
	}
	if updatedRows == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("verifyOTP: could not commit transaction: err: %w", err)
	}

	return nil
}

// UpdateEngagement applies a point delta to the caller's own profile and
// persists the recomputed membership tier.
func (u *User) UpdateEngagement(ctx context.Context, db *sql.DB, profileID int64, points int64, caller string) (*model.UserProfile, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("updateEngagement: error begining db transaction: %s", err)
	}

	p, ok, err := fetchProfileForUpdate(tx, profileID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("updateEngagement: error fetching profile: %w", err)
	}
	if !ok {
		tx.Rollback()
		return nil, ErrNotFound
	}

	if err := ledger.UpdateEngagementScore(p, points, caller); err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = store.Update(
		tx,
		profileTable,
		[]string{"engagement_score", "membership_tier"},
		[]interface{}{p.EngagementScore, p.MembershipTier},
		[]string{"profile_id"},
		[]interface{}{profileID},
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("updateEngagement: error updating profile: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("updateEngagement: could not commit transaction: err: %w", err)
	}

	return p, nil
}

// Get returns the profile with its attendance history.
func (u *User) Get(db *sql.DB, profileID int64) (*model.UserProfile, error) {
	p, ok, err := fetchProfile(db, profileID)
	if err != nil {
		return nil, fmt.Errorf("get: error fetching profile: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	p.EventsAttended, err = fetchEventsAttended(db, p.Address)
	if err != nil {
		return nil, fmt.Errorf("get: error fetching attendance: %w", err)
	}

	return p, nil
}

// AddressOf resolves the ledger address a profile acts as. Handlers use it
// to turn the authenticated profile reference into the caller identity.
func (u *User) AddressOf(db *sql.DB, profileID int64) (string, error) {
	p, ok, err := fetchProfile(db, profileID)
	if err != nil {
		return "", fmt.Errorf("addressOf: error fetching profile: %w", err)
	}
	if !ok {
		return "", ErrNotFound
	}

	return p.Address, nil
}
