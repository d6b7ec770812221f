package mailer

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/keys"
	gomail "gopkg.in/gomail.v2"
)

// DonationReceipt carries the details rendered into a donation receipt email
type DonationReceipt struct {
	Name      string
	Email     string
	Amount    int
	Type      string
	PaymentID string
}

// MemberWelcome carries the details rendered into a member welcome email.
// ResetToken is the one-time credential link token; no password is ever sent.
type MemberWelcome struct {
	Name         string
	Email        string
	MembershipID string
	ResetToken   string
}

// Mailer provides an interface by which to send fulfillment notifications
type Mailer interface {
	SendDonationReceipt(receipt DonationReceipt) error
	SendMemberWelcome(welcome MemberWelcome) error
}

// SMTPMailer implements the Mailer interface over an SMTP relay
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	portalURL string
}

// New returns a new implementation of the Mailer interface
func New(host string, port int, user, password, from, portalURL string) *SMTPMailer {

	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, user, password),
		from:      from,
		portalURL: portalURL,
	}
}

// SendDonationReceipt sends a receipt for a completed donation
func (m *SMTPMailer) SendDonationReceipt(receipt DonationReceipt) error {

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", receipt.Email)
	msg.SetHeader("Subject", "Thank you for your donation to FOSS Andhra")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Thank you for your %s donation of ₹%d.</p>"+
			"<p>Payment reference: %s</p>"+
			"<p>FOSS Andhra</p>",
		receipt.Name, receipt.Type, receipt.Amount, receipt.PaymentID))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}

	log.Info("donation receipt sent", log.Data{keys.Recipient: receipt.Email, keys.PaymentID: receipt.PaymentID})
	return nil
}

// SendMemberWelcome sends a welcome email containing the password reset link
// for a newly activated member
func (m *SMTPMailer) SendMemberWelcome(welcome MemberWelcome) error {

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", m.portalURL, welcome.ResetToken)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", welcome.Email)
	msg.SetHeader("Subject", "Welcome to FOSS Andhra membership")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your membership is active. Your membership id is <b>%s</b>.</p>"+
			"<p><a href=\"%s\">Set your password</a> to access the member portal. "+
			"The link is valid for 24 hours.</p>"+
			"<p>FOSS Andhra</p>",
		welcome.Name, welcome.MembershipID, resetLink))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}

	log.Info("member welcome sent", log.Data{keys.Recipient: welcome.Email, keys.MembershipID: welcome.MembershipID})
	return nil
}
