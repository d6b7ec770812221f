package testutil

import (
	"time"

	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared fixtures for fulfillment tests.

const (
	DonorName  = "Asha Rao"
	DonorEmail = "asha@example.org"
	DonorPhone = "9876543210"
)

// CreateDonationRequest returns a valid non-anonymous donation request
func CreateDonationRequest() data.DonationRequest {
	return data.DonationRequest{
		DonationType: "monthly",
		Amount:       500,
		Name:         DonorName,
		Email:        DonorEmail,
		Phone:        DonorPhone,
	}
}

// CreatePendingDonation returns a stored pending donation record
func CreatePendingDonation() *models.DonationResourceDao {
	return &models.DonationResourceDao{
		ID:        primitive.NewObjectID(),
		Name:      DonorName,
		Email:     DonorEmail,
		Phone:     DonorPhone,
		Amount:    500,
		Type:      "Monthly",
		Status:    models.DonationStatusPending,
		CreatedAt: time.Now(),
	}
}

// CreateCompletedDonation returns a stored completed donation record
func CreateCompletedDonation(paymentID string) *models.DonationResourceDao {
	donation := CreatePendingDonation()
	donation.Status = models.DonationStatusCompleted
	donation.PaymentID = paymentID
	donation.RazorpayOrderID = "order_existing"
	donation.CompletedAt = time.Now()
	return donation
}

// CreateMembershipCompletionRequest returns a valid membership completion request
func CreateMembershipCompletionRequest(paymentID string) data.MembershipCompletionRequest {
	return data.MembershipCompletionRequest{
		PaymentID: paymentID,
		OrderID:   "order_1",
		UserDetails: data.UserDetails{
			Name:  DonorName,
			Email: DonorEmail,
			Phone: DonorPhone,
		},
		MembershipType: "FOSStar Annual",
	}
}

// CreateMember returns a stored member record with an expiry relative to now
func CreateMember(membershipID, paymentID string, expiresIn time.Duration) *models.MemberResourceDao {
	return &models.MemberResourceDao{
		ID:             primitive.NewObjectID(),
		MembershipID:   membershipID,
		Name:           DonorName,
		Email:          DonorEmail,
		Phone:          DonorPhone,
		MembershipType: "FOSStar Annual",
		Status:         "active",
		ExpiryDate:     time.Now().Add(expiresIn),
		PaymentID:      paymentID,
		Password:       "$2a$10$existinghashexistinghashexistingha",
		CreatedAt:      time.Now().Add(-24 * time.Hour),
		UpdatedAt:      time.Now().Add(-24 * time.Hour),
	}
}
