// Package fulfillment reconciles external payment gateway confirmations
// against donation and member records. Completions are idempotent on the
// gateway payment id, and notification email is strictly best effort: the
// stored financial state is authoritative whether or not mail is delivered.
package fulfillment

import (
	"errors"

	"github.com/fossandhra/payment-fulfillment-service/config"
	"github.com/fossandhra/payment-fulfillment-service/dao"
	"github.com/fossandhra/payment-fulfillment-service/gateway"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
)

// Sentinel errors callers can test with errors.Is to map failures onto HTTP
// responses. Wrapped errors carry the descriptive message.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Service holds the collaborators for the fulfillment workflows
type Service struct {
	DAO     dao.DAO
	Gateway gateway.Gateway
	Mailer  mailer.Mailer
	FeeMap  *config.MembershipFeeMap
}

// New creates a fulfillment service with a given DAO, gateway and mailer
func New(d dao.DAO, g gateway.Gateway, m mailer.Mailer) (*Service, error) {

	feeMap, err := config.GetMembershipFeeMap()
	if err != nil {
		return nil, err
	}

	return &Service{
		DAO:     d,
		Gateway: g,
		Mailer:  m,
		FeeMap:  feeMap,
	}, nil
}
