package dao

import (
	"github.com/fossandhra/payment-fulfillment-service/config"
	"github.com/fossandhra/payment-fulfillment-service/models"
)

// DAO provides access to the database
type DAO interface {
	// CreateDonationResource will persist a newly created pending donation
	CreateDonationResource(donation *models.DonationResourceDao) error
	// GetDonationResource fetches a donation by id, returning nil when absent
	GetDonationResource(id string) (*models.DonationResourceDao, error)
	// AttachDonationOrder stores the gateway order id against a donation
	AttachDonationOrder(id string, orderID string) error
	// CompleteDonationResource marks a pending donation completed in a single
	// conditional update. It reports whether a pending record was matched.
	CompleteDonationResource(id string, paymentID string, orderID string, signature string) (bool, error)
	// BackfillDonationSignature stores a signature on an already completed
	// donation without altering any other field
	BackfillDonationSignature(id string, signature string) error
	// GetMemberByPaymentID fetches the member holding a payment id, returning nil when absent
	GetMemberByPaymentID(paymentID string) (*models.MemberResourceDao, error)
	// GetMemberByEmail fetches a member by email, returning nil when absent
	GetMemberByEmail(email string) (*models.MemberResourceDao, error)
	// MembershipIDExists reports whether a membership id is already in use
	MembershipIDExists(membershipID string) (bool, error)
	// UpsertMemberResource updates the member keyed by email, creating the
	// record when absent. Unique index violations are returned unwrapped so
	// that callers can detect them with IsDuplicateKey.
	UpsertMemberResource(member *models.MemberResourceDao) error
	// GetSetting fetches a settings value by key, returning "" when absent
	GetSetting(key string) (string, error)
	// Shutdown can be called to clean up any open resources that the service may be holding on to.
	Shutdown()
}

// NewDAOService will create a new instance of the DAO interface. All details about its
// implementation and the database driver will be hidden from outside of this package
func NewDAOService(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	m := &MongoService{
		db:                  database,
		DonationsCollection: cfg.DonationsCollection,
		MembersCollection:   cfg.MembersCollection,
		SettingsCollection:  cfg.SettingsCollection,
	}
	m.ensureIndexes()
	return m
}
