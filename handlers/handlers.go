package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/fulfillment"
	"github.com/gorilla/pat"
)

// FulfillmentHandler exposes the fulfillment operations over HTTP. It does
// nothing beyond decoding, delegating and mapping errors; the business rules
// live in the fulfillment package.
type FulfillmentHandler struct {
	Service *fulfillment.Service
}

// Init registers the fulfillment routes on the supplied router
func Init(r *pat.Router, svc *fulfillment.Service) {
	log.Info("initialising fulfillment endpoints beneath basePath: /payment-fulfillment")

	h := &FulfillmentHandler{Service: svc}

	appRouter := r.PathPrefix("/payment-fulfillment").Subrouter()

	appRouter.Path("/donations").Methods("POST").HandlerFunc(h.CreateDonation)
	appRouter.Path("/donations/checkout").Methods("POST").HandlerFunc(h.DonationCheckout)
	appRouter.Path("/donations/complete").Methods("POST").HandlerFunc(h.CompleteDonation)
	appRouter.Path("/memberships/payment-defaults").Methods("GET").HandlerFunc(h.MembershipPaymentDefaults)
	appRouter.Path("/memberships/complete").Methods("POST").HandlerFunc(h.CompleteMembership)
	appRouter.Path("/healthcheck").Methods("GET").HandlerFunc(HealthCheck)
}

// CreateDonation handles POST /donations
func (h *FulfillmentHandler) CreateDonation(w http.ResponseWriter, req *http.Request) {

	var donationRequest data.DonationRequest
	if !decodeBody(w, req, &donationRequest) {
		return
	}

	result, err := h.Service.CreatePendingDonation(donationRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// DonationCheckout handles POST /donations/checkout
func (h *FulfillmentHandler) DonationCheckout(w http.ResponseWriter, req *http.Request) {

	var checkoutRequest data.CheckoutRequest
	if !decodeBody(w, req, &checkoutRequest) {
		return
	}

	result, err := h.Service.GetDonationCheckoutContext(checkoutRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CompleteDonation handles POST /donations/complete
func (h *FulfillmentHandler) CompleteDonation(w http.ResponseWriter, req *http.Request) {

	var completionRequest data.DonationCompletionRequest
	if !decodeBody(w, req, &completionRequest) {
		return
	}

	result, err := h.Service.CompleteDonationPayment(completionRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// MembershipPaymentDefaults handles GET /memberships/payment-defaults. An
// optional membership_type query parameter also resolves the amount payable.
func (h *FulfillmentHandler) MembershipPaymentDefaults(w http.ResponseWriter, req *http.Request) {

	defaults, err := h.Service.GetMembershipPaymentDefaults()
	if err != nil {
		writeError(w, err)
		return
	}

	response := struct {
		data.PaymentDefaults
		Amount int `json:"amount"`
	}{
		PaymentDefaults: defaults,
		Amount:          h.Service.ResolveMembershipAmount(req.URL.Query().Get("membership_type"), defaults),
	}

	writeJSON(w, http.StatusOK, response)
}

// CompleteMembership handles POST /memberships/complete
func (h *FulfillmentHandler) CompleteMembership(w http.ResponseWriter, req *http.Request) {

	var completionRequest data.MembershipCompletionRequest
	if !decodeBody(w, req, &completionRequest) {
		return
	}

	result, err := h.Service.CompleteMembershipPayment(completionRequest)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func decodeBody(w http.ResponseWriter, req *http.Request, v interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(err)
	}
}

func writeError(w http.ResponseWriter, err error) {

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, fulfillment.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, fulfillment.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, fulfillment.ErrConflict):
		status = http.StatusConflict
	default:
		log.Error(err)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
