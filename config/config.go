package config

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/ian-kent/gofigure"
	"gopkg.in/yaml.v2"
)

// Config is the payment fulfillment service config
type Config struct {
	gofigure            interface{} `order:"env,flag"`
	BindAddr            string      `env:"BIND_ADDR"                       flag:"bind-addr"                     flagDesc:"Bind address for the HTTP server"`
	MongoDBURL          string      `env:"MONGODB_URL"                     flag:"mongodb-url"                   flagDesc:"MongoDB server URL"`
	Database            string      `env:"FULFILLMENT_MONGODB_DATABASE"    flag:"mongodb-database"              flagDesc:"MongoDB database for data"`
	DonationsCollection string      `env:"MONGODB_DONATIONS_COLLECTION"    flag:"mongodb-donations-collection"  flagDesc:"MongoDB collection for donation records"`
	MembersCollection   string      `env:"MONGODB_MEMBERS_COLLECTION"      flag:"mongodb-members-collection"    flagDesc:"MongoDB collection for member records"`
	SettingsCollection  string      `env:"MONGODB_SETTINGS_COLLECTION"     flag:"mongodb-settings-collection"   flagDesc:"MongoDB collection for settings"`
	RazorpayKeyID       string      `env:"RAZORPAY_KEY_ID"                 flag:"razorpay-key-id"               flagDesc:"Razorpay API key id"`
	RazorpayKeySecret   string      `env:"RAZORPAY_KEY_SECRET"             flag:"razorpay-key-secret"           flagDesc:"Razorpay API key secret"`
	SMTPHost            string      `env:"SMTP_HOST"                       flag:"smtp-host"                     flagDesc:"SMTP server host"`
	SMTPPort            int         `env:"SMTP_PORT"                       flag:"smtp-port"                     flagDesc:"SMTP server port"`
	SMTPUser            string      `env:"SMTP_USER"                       flag:"smtp-user"                     flagDesc:"SMTP user name"`
	SMTPPassword        string      `env:"SMTP_PASSWORD"                   flag:"smtp-password"                 flagDesc:"SMTP password"`
	EmailFromAddress    string      `env:"EMAIL_FROM_ADDRESS"              flag:"email-from-address"            flagDesc:"From address for outbound mail"`
	PortalURL           string      `env:"PORTAL_URL"                      flag:"portal-url"                    flagDesc:"Base URL of the member portal, used in reset links"`
}

// Namespace returns the service namespace used in log output
func (c *Config) Namespace() string {
	return "payment-fulfillment-service"
}

// MembershipFeeMap contains the fixed fee, in rupees, charged for each
// recognised membership type. Keys are lower-cased type labels.
type MembershipFeeMap struct {
	Fees map[string]int `yaml:"membership_fee"`
}

// Amount returns the fixed fee for a membership type, or zero when the type
// has no mapping
func (m *MembershipFeeMap) Amount(membershipType string) int {
	return m.Fees[strings.ToLower(strings.TrimSpace(membershipType))]
}

var feeMap *MembershipFeeMap

// GetMembershipFeeMap fetches the membership type to fee mapping
func GetMembershipFeeMap() (*MembershipFeeMap, error) {

	if feeMap != nil {
		return feeMap, nil
	}

	filename, err := filepath.Abs("assets/membership_fees.yml")
	if err != nil {
		return nil, err
	}

	yamlFile, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &feeMap)
	if err != nil {
		return nil, err
	}

	return feeMap, nil
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {

	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:            ":8080",
		Database:            "fulfillment",
		DonationsCollection: "donations",
		MembersCollection:   "members",
		SettingsCollection:  "settings",
		SMTPPort:            587,
	}

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
