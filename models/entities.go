package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
)

// DonationResourceDao represents a donation record
type DonationResourceDao struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	Phone             string             `bson:"phone"`
	Amount            int                `bson:"amount"`
	Type              string             `bson:"type"`
	Status            string             `bson:"status"`
	Anonymous         bool               `bson:"anonymous"`
	Program           string             `bson:"program,omitempty"`
	Notes             string             `bson:"notes,omitempty"`
	PaymentID         string             `bson:"payment_id,omitempty"`
	RazorpayOrderID   string             `bson:"razorpay_order_id,omitempty"`
	RazorpaySignature string             `bson:"razorpay_signature,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"`
	CompletedAt       time.Time          `bson:"completed_at,omitempty"`
}

// MemberResourceDao represents a member record. Email and MembershipID carry
// unique indexes; races on either surface as duplicate key errors.
type MemberResourceDao struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	MembershipID     string             `bson:"membership_id"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	Phone            string             `bson:"phone"`
	MembershipType   string             `bson:"membership_type"`
	Status           string             `bson:"status"`
	ExpiryDate       time.Time          `bson:"expiry_date"`
	PaymentID        string             `bson:"payment_id,omitempty"`
	Organization     string             `bson:"organization,omitempty"`
	Designation      string             `bson:"designation,omitempty"`
	Experience       string             `bson:"experience,omitempty"`
	Interests        string             `bson:"interests,omitempty"`
	Address          string             `bson:"address,omitempty"`
	Referral         string             `bson:"referral,omitempty"`
	Password         string             `bson:"password,omitempty"`
	ResetToken       string             `bson:"reset_token,omitempty"`
	ResetTokenExpiry time.Time          `bson:"reset_token_expiry,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

// SettingResourceDao represents a single key/value settings entry
type SettingResourceDao struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}
