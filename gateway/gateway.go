package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/keys"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// Order is a payment order registered with the gateway
type Order struct {
	ID       string
	Amount   int
	Currency string
}

// Gateway provides an interface by which to register orders with, and verify
// confirmations from, the payment gateway
type Gateway interface {
	CreateOrder(amountPaise int, currency string, receipt string) (Order, error)
	VerifySignature(orderID string, paymentID string, signature string) bool
	KeyID() string
}

// Razorpay implements the Gateway interface against the Razorpay API
type Razorpay struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// New returns a new implementation of the Gateway interface
func New(keyID, keySecret string) *Razorpay {

	return &Razorpay{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// KeyID returns the public API key id the client checkout needs
func (g *Razorpay) KeyID() string {
	return g.keyID
}

// CreateOrder registers an order with the gateway. Amounts are in the
// smallest currency unit (paise).
func (g *Razorpay) CreateOrder(amountPaise int, currency string, receipt string) (Order, error) {

	if receipt == "" {
		receipt = uuid.NewString()
	}

	body := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	log.Trace("POST request to the gateway to create an order", log.Data{keys.Amount: amountPaise})

	res, err := g.client.Order.Create(body, nil)
	if err != nil {
		return Order{}, fmt.Errorf("error creating gateway order: %s", err)
	}

	orderID, _ := res["id"].(string)
	log.Info("gateway order created", log.Data{keys.OrderID: orderID, keys.Amount: amountPaise})

	return Order{ID: orderID, Amount: amountPaise, Currency: currency}, nil
}

// VerifySignature checks a payment confirmation signature: an HMAC-SHA256 of
// "orderId|paymentId" under the key secret, hex encoded
func (g *Razorpay) VerifySignature(orderID string, paymentID string, signature string) bool {

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		log.Info("payment signature verification failed", log.Data{keys.OrderID: orderID, keys.PaymentID: paymentID})
		return false
	}

	return true
}
