package data

// DonationRequest represents the payload accepted when creating a pending donation
type DonationRequest struct {
	DonationType string `json:"donation_type"`
	Amount       int    `json:"amount"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Anonymous    bool   `json:"anonymous,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Program      string `json:"program,omitempty"`
}

// DonationResult is returned once a pending donation has been persisted
type DonationResult struct {
	DonationID string `json:"donation_id"`
	Status     string `json:"status"`
}

// CheckoutRequest asks for a gateway order for an existing pending donation
type CheckoutRequest struct {
	DonationID string `json:"donation_id"`
}

// CheckoutContext carries everything the client checkout needs to open the
// gateway widget against the pending donation
type CheckoutContext struct {
	DonationID string `json:"donation_id"`
	OrderID    string `json:"order_id"`
	Amount     int    `json:"amount"`
	Currency   string `json:"currency"`
	KeyID      string `json:"key_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// DonationCompletionRequest reconciles a gateway payment confirmation
// against a pending donation
type DonationCompletionRequest struct {
	DonationID string `json:"donation_id"`
	PaymentID  string `json:"payment_id"`
	OrderID    string `json:"order_id"`
	Signature  string `json:"signature,omitempty"`
}

// DonationCompletionResult reports the outcome of a completion attempt
type DonationCompletionResult struct {
	DonationID       string `json:"donation_id"`
	AlreadyProcessed bool   `json:"already_processed"`
}
