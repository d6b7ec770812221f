package fulfillment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/keys"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
	"github.com/fossandhra/payment-fulfillment-service/models"
)

// Donation amounts accepted, in rupees
const (
	MinDonationAmount = 100
	MaxDonationAmount = 100000
)

// PlaceholderDomain is the reserved domain used to synthesize addresses for
// anonymous donors. No mail is ever sent to addresses on this domain.
const PlaceholderDomain = "donors.fossandhra.invalid"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// donationTypes normalizes the free-text donation type into the fixed
// vocabulary stored on donation records
var donationTypes = map[string]string{
	"one-time":  "One-time",
	"onetime":   "One-time",
	"one time":  "One-time",
	"monthly":   "Monthly",
	"recurring": "Recurring",
	"annual":    "Annual",
	"annually":  "Annual",
	"yearly":    "Annual",
}

func normalizeDonationType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "One-time"
	}
	if canonical, ok := donationTypes[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// CreatePendingDonation validates and persists a donation in the pending
// state. No email is sent at this stage.
func (svc *Service) CreatePendingDonation(req data.DonationRequest) (*data.DonationResult, error) {

	if req.Amount < MinDonationAmount || req.Amount > MaxDonationAmount {
		return nil, fmt.Errorf("%w: donation amount must be between %d and %d",
			ErrValidation, MinDonationAmount, MaxDonationAmount)
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if !req.Anonymous {
		if name == "" || email == "" || phone == "" {
			return nil, fmt.Errorf("%w: name, email and phone are required for non-anonymous donations", ErrValidation)
		}
	}

	if email != "" && !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrValidation)
	}

	// anonymous donors without an address get one on the reserved domain so
	// the record is well formed; the receipt step skips this domain
	if email == "" {
		email = fmt.Sprintf("anonymous+%d@%s", time.Now().UnixMilli(), PlaceholderDomain)
	}
	if name == "" {
		name = "Anonymous Donor"
	}

	donation := &models.DonationResourceDao{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Amount:    req.Amount,
		Type:      normalizeDonationType(req.DonationType),
		Status:    models.DonationStatusPending,
		Anonymous: req.Anonymous,
		Program:   strings.TrimSpace(req.Program),
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: time.Now(),
	}

	if err := svc.DAO.CreateDonationResource(donation); err != nil {
		return nil, err
	}

	log.Info("pending donation created", log.Data{
		keys.DonationID: donation.ID.Hex(),
		keys.Amount:     donation.Amount,
	})

	return &data.DonationResult{
		DonationID: donation.ID.Hex(),
		Status:     donation.Status,
	}, nil
}

// GetDonationCheckoutContext registers a gateway order for a pending donation
// and returns the details the client checkout needs
func (svc *Service) GetDonationCheckoutContext(req data.CheckoutRequest) (*data.CheckoutContext, error) {

	donation, err := svc.DAO.GetDonationResource(req.DonationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, fmt.Errorf("%w: donation %s not found", ErrNotFound, req.DonationID)
	}
	if donation.Status == models.DonationStatusCompleted {
		return nil, fmt.Errorf("%w: donation %s is already completed", ErrConflict, req.DonationID)
	}

	order, err := svc.Gateway.CreateOrder(donation.Amount*100, "INR", "")
	if err != nil {
		return nil, err
	}

	if err := svc.DAO.AttachDonationOrder(req.DonationID, order.ID); err != nil {
		return nil, err
	}

	ctx := &data.CheckoutContext{
		DonationID: req.DonationID,
		OrderID:    order.ID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		KeyID:      svc.Gateway.KeyID(),
	}
	if !donation.Anonymous {
		ctx.Name = donation.Name
		ctx.Email = donation.Email
		ctx.Phone = donation.Phone
	}

	return ctx, nil
}

// CompleteDonationPayment reconciles a gateway payment confirmation against a
// pending donation. Completing twice with the same payment id is an idempotent
// success; a different payment id against a completed donation is a conflict.
func (svc *Service) CompleteDonationPayment(req data.DonationCompletionRequest) (*data.DonationCompletionResult, error) {

	if req.DonationID == "" || req.PaymentID == "" {
		return nil, fmt.Errorf("%w: donation id and payment id are required", ErrValidation)
	}

	if req.Signature != "" && req.OrderID != "" {
		if !svc.Gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
			return nil, fmt.Errorf("%w: invalid payment signature", ErrValidation)
		}
	}

	donation, err := svc.DAO.GetDonationResource(req.DonationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, fmt.Errorf("%w: donation %s not found", ErrNotFound, req.DonationID)
	}

	if donation.Status == models.DonationStatusCompleted {
		return svc.reconcileCompletedDonation(donation, req)
	}

	matched, err := svc.DAO.CompleteDonationResource(req.DonationID, req.PaymentID, req.OrderID, req.Signature)
	if err != nil {
		return nil, err
	}
	if !matched {
		// lost a race with a concurrent completion; re-read and apply the
		// already-completed rules
		donation, err = svc.DAO.GetDonationResource(req.DonationID)
		if err != nil {
			return nil, err
		}
		if donation == nil {
			return nil, fmt.Errorf("%w: donation %s not found", ErrNotFound, req.DonationID)
		}
		return svc.reconcileCompletedDonation(donation, req)
	}

	svc.sendDonationReceipt(donation, req.PaymentID)

	return &data.DonationCompletionResult{DonationID: req.DonationID}, nil
}

// reconcileCompletedDonation applies the idempotency rules for a donation
// that has already been completed
func (svc *Service) reconcileCompletedDonation(donation *models.DonationResourceDao,
	req data.DonationCompletionRequest) (*data.DonationCompletionResult, error) {

	if donation.PaymentID != req.PaymentID {
		return nil, fmt.Errorf("%w: donation %s already completed with a different payment",
			ErrConflict, req.DonationID)
	}

	// narrow exception to immutability after completion: a webhook carrying
	// the signature may arrive after the checkout callback completed the record
	if donation.RazorpaySignature == "" && req.Signature != "" {
		if err := svc.DAO.BackfillDonationSignature(req.DonationID, req.Signature); err != nil {
			log.Error(err, log.Data{keys.DonationID: req.DonationID})
		}
	}

	return &data.DonationCompletionResult{DonationID: req.DonationID, AlreadyProcessed: true}, nil
}

// sendDonationReceipt attempts the receipt email. Failure is logged and never
// propagated: the completed donation must stand whether or not mail went out.
func (svc *Service) sendDonationReceipt(donation *models.DonationResourceDao, paymentID string) {

	if strings.HasSuffix(donation.Email, "@"+PlaceholderDomain) {
		log.Debug("skipping receipt for placeholder address", log.Data{keys.DonationID: donation.ID.Hex()})
		return
	}

	err := svc.Mailer.SendDonationReceipt(mailer.DonationReceipt{
		Name:      donation.Name,
		Email:     donation.Email,
		Amount:    donation.Amount,
		Type:      donation.Type,
		PaymentID: paymentID,
	})
	if err != nil {
		log.Error(fmt.Errorf("error sending donation receipt: %s", err), log.Data{
			keys.DonationID: donation.ID.Hex(),
			keys.Recipient:  donation.Email,
		})
	}
}
