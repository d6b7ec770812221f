package data

// UserDetails identifies the paying member
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MembershipCompletionRequest reconciles a gateway payment confirmation
// against an existing or new member record
type MembershipCompletionRequest struct {
	PaymentID      string                 `json:"payment_id"`
	OrderID        string                 `json:"order_id"`
	UserDetails    UserDetails            `json:"user_details"`
	MembershipType string                 `json:"membership_type,omitempty"`
	AdditionalData map[string]interface{} `json:"additional_data,omitempty"`
}

// MembershipCompletionResult reports the outcome of a membership activation
type MembershipCompletionResult struct {
	MembershipID     string `json:"membership_id"`
	AlreadyProcessed bool   `json:"already_processed"`
}

// PaymentDefaults holds the configured membership fee and duration, with
// fallbacks applied when the settings store has no usable values
type PaymentDefaults struct {
	AnnualFee      int `json:"annual_fee"`
	DurationMonths int `json:"duration_months"`
}
