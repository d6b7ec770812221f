package fulfillment

import (
	"fmt"
	"strings"
)

// memberProfile is the subset of member fields filled from the loosely typed
// signup form payload
type memberProfile struct {
	Organization string
	Designation  string
	Experience   string
	Interests    string
	Address      string
	Referral     string
}

// profileAliases lists, per profile field, the upstream form field names that
// may carry it, in priority order. Upstream form shapes vary; the first
// present, non-empty candidate wins.
var profileAliases = []struct {
	assign  func(*memberProfile, string)
	aliases []string
}{
	{func(p *memberProfile, v string) { p.Organization = v },
		[]string{"organization", "organisation", "company", "institution"}},
	{func(p *memberProfile, v string) { p.Designation = v },
		[]string{"designation", "role", "title", "occupation"}},
	{func(p *memberProfile, v string) { p.Experience = v },
		[]string{"experience", "years_of_experience", "yearsOfExperience"}},
	{func(p *memberProfile, v string) { p.Interests = v },
		[]string{"interests", "areas_of_interest", "areasOfInterest", "skills"}},
	{func(p *memberProfile, v string) { p.Address = v },
		[]string{"address", "full_address", "city", "location"}},
	{func(p *memberProfile, v string) { p.Referral = v },
		[]string{"referral", "referred_by", "referredBy", "how_did_you_hear"}},
}

// extractProfile applies the alias table to the additional data bag
func extractProfile(additional map[string]interface{}) memberProfile {

	var profile memberProfile
	if additional == nil {
		return profile
	}

	for _, entry := range profileAliases {
		for _, alias := range entry.aliases {
			value, ok := additional[alias]
			if !ok || value == nil {
				continue
			}
			if text := strings.TrimSpace(fmt.Sprint(value)); text != "" {
				entry.assign(&profile, text)
				break
			}
		}
	}

	return profile
}
