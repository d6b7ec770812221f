package fulfillment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/dao"
	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/keys"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
	"github.com/fossandhra/payment-fulfillment-service/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MembershipIDPrefix starts every generated membership id
	MembershipIDPrefix = "FOSS"

	// resetTokenValidity is how long a welcome reset token stays usable
	resetTokenValidity = 24 * time.Hour

	// id generation is probabilistic, so allocation and upsert are bounded retries
	membershipIDAttempts = 8
	memberUpsertAttempts = 3
)

// CompleteMembershipPayment reconciles a gateway payment confirmation against
// an existing or new member record. The payment id is the primary duplicate
// processing guard: a payment id that already activated a membership returns
// that membership and performs no writes.
func (svc *Service) CompleteMembershipPayment(req data.MembershipCompletionRequest) (*data.MembershipCompletionResult, error) {

	email := strings.ToLower(strings.TrimSpace(req.UserDetails.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: member email is required", ErrValidation)
	}
	if req.PaymentID == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrValidation)
	}

	holder, err := svc.DAO.GetMemberByPaymentID(req.PaymentID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		log.Info("payment already fulfilled", log.Data{
			keys.PaymentID:    req.PaymentID,
			keys.MembershipID: holder.MembershipID,
		})
		return &data.MembershipCompletionResult{MembershipID: holder.MembershipID, AlreadyProcessed: true}, nil
	}

	existing, err := svc.DAO.GetMemberByEmail(email)
	if err != nil {
		return nil, err
	}

	defaults, err := svc.GetMembershipPaymentDefaults()
	if err != nil {
		return nil, err
	}

	// renewal extends rather than resets: roll forward from the current
	// expiry when it is still in the future
	now := time.Now()
	base := now
	if existing != nil && existing.ExpiryDate.After(now) {
		base = existing.ExpiryDate
	}

	profile := extractProfile(req.AdditionalData)

	member := &models.MemberResourceDao{
		Email:          email,
		Name:           strings.TrimSpace(req.UserDetails.Name),
		Phone:          strings.TrimSpace(req.UserDetails.Phone),
		MembershipType: strings.TrimSpace(req.MembershipType),
		Status:         "active",
		ExpiryDate:     base.AddDate(0, defaults.DurationMonths, 0),
		PaymentID:      req.PaymentID,
		Organization:   profile.Organization,
		Designation:    profile.Designation,
		Experience:     profile.Experience,
		Interests:      profile.Interests,
		Address:        profile.Address,
		Referral:       profile.Referral,
	}
	if existing != nil {
		if member.Name == "" {
			member.Name = existing.Name
		}
		if member.Phone == "" {
			member.Phone = existing.Phone
		}
		if member.MembershipType == "" {
			member.MembershipType = existing.MembershipType
		}
	}
	if member.MembershipType == "" {
		member.MembershipType = "FOSStar Annual"
	}

	// credentials are generated exactly once, on first successful payment.
	// The member only ever receives a reset token; the password behind it is
	// random and never disclosed.
	newCredentials := existing == nil || existing.Password == ""
	if newCredentials {
		token, passwordHash, err := generateCredentials()
		if err != nil {
			return nil, err
		}
		member.ResetToken = token
		member.ResetTokenExpiry = now.Add(resetTokenValidity)
		member.Password = passwordHash
	}

	if existing != nil {
		member.MembershipID = existing.MembershipID
	}

	if err := svc.upsertWithFreshIDs(member, existing == nil); err != nil {
		return nil, err
	}

	log.Info("membership activated", log.Data{
		keys.MembershipID:   member.MembershipID,
		keys.MembershipType: member.MembershipType,
		keys.PaymentID:      req.PaymentID,
	})

	if newCredentials {
		svc.sendMemberWelcome(member)
	}

	return &data.MembershipCompletionResult{MembershipID: member.MembershipID}, nil
}

// upsertWithFreshIDs persists the member, allocating a membership id when the
// member is new. A duplicate key raised for a freshly generated id means a
// concurrent insert took it, so a new id is allocated and the upsert retried
// a bounded number of times.
func (svc *Service) upsertWithFreshIDs(member *models.MemberResourceDao, isNew bool) error {

	var err error
	for attempt := 1; attempt <= memberUpsertAttempts; attempt++ {

		if member.MembershipID == "" {
			member.MembershipID, err = svc.generateMembershipID()
			if err != nil {
				return err
			}
		}

		err = svc.DAO.UpsertMemberResource(member)
		if err == nil {
			return nil
		}

		if dao.IsDuplicateKey(err) && isNew {
			log.Info("membership id collision, regenerating", log.Data{
				keys.MembershipID: member.MembershipID,
				keys.Attempt:      attempt,
			})
			member.MembershipID = ""
			continue
		}

		return err
	}

	return fmt.Errorf("%w: unable to activate membership", ErrConflict)
}

// generateMembershipID allocates an unused membership id: the prefix, the
// last 8 digits of the current epoch millis, and 4 random digits
func (svc *Service) generateMembershipID() (string, error) {

	for attempt := 0; attempt < membershipIDAttempts; attempt++ {

		millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
		suffix, err := randomDigits(4)
		if err != nil {
			return "", err
		}
		candidate := MembershipIDPrefix + millis[len(millis)-8:] + suffix

		exists, err := svc.DAO.MembershipIDExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: unable to allocate a membership id", ErrConflict)
}

func randomDigits(n int) (string, error) {

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	digits := make([]byte, n)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits), nil
}

// generateCredentials produces a one-time reset token and a bcrypt hash of a
// random password that is never stored in the clear nor disclosed
func generateCredentials() (string, string, error) {

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}

	secret := make([]byte, 24)
	if _, err := rand.Read(secret); err != nil {
		return "", "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword(secret, bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	return hex.EncodeToString(tokenBytes), string(passwordHash), nil
}

// sendMemberWelcome attempts the welcome email carrying the reset token.
// Failure is logged and never propagated.
func (svc *Service) sendMemberWelcome(member *models.MemberResourceDao) {

	err := svc.Mailer.SendMemberWelcome(mailer.MemberWelcome{
		Name:         member.Name,
		Email:        member.Email,
		MembershipID: member.MembershipID,
		ResetToken:   member.ResetToken,
	})
	if err != nil {
		log.Error(fmt.Errorf("error sending member welcome: %s", err), log.Data{
			keys.MembershipID: member.MembershipID,
			keys.Recipient:    member.Email,
		})
	}
}
