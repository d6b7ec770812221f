package fulfillment

import (
	"strconv"

	"github.com/fossandhra/payment-fulfillment-service/data"
)

// Fallbacks applied when the settings store has no usable values
const (
	DefaultAnnualFee      = 300
	DefaultDurationMonths = 12
)

// Settings keys read by the fee resolution
const (
	settingMembershipFee      = "membershipFee"
	settingMembershipDuration = "membershipDuration"
)

// GetMembershipPaymentDefaults reads the configurable membership fee and
// duration from the settings store, applying defaults when a value is
// missing or non-positive
func (svc *Service) GetMembershipPaymentDefaults() (data.PaymentDefaults, error) {

	defaults := data.PaymentDefaults{
		AnnualFee:      DefaultAnnualFee,
		DurationMonths: DefaultDurationMonths,
	}

	fee, err := svc.DAO.GetSetting(settingMembershipFee)
	if err != nil {
		return defaults, err
	}
	if parsed, err := strconv.Atoi(fee); err == nil && parsed > 0 {
		defaults.AnnualFee = parsed
	}

	duration, err := svc.DAO.GetSetting(settingMembershipDuration)
	if err != nil {
		return defaults, err
	}
	if parsed, err := strconv.Atoi(duration); err == nil && parsed > 0 {
		defaults.DurationMonths = parsed
	}

	return defaults, nil
}

// ResolveMembershipAmount returns the fixed fee for a recognised membership
// type, falling back to the configured annual fee otherwise
func (svc *Service) ResolveMembershipAmount(membershipType string, defaults data.PaymentDefaults) int {

	if amount := svc.FeeMap.Amount(membershipType); amount > 0 {
		return amount
	}

	return defaults.AnnualFee
}
