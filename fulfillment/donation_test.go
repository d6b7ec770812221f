package fulfillment

import (
	"errors"
	"testing"

	"github.com/fossandhra/payment-fulfillment-service/config"
	"github.com/fossandhra/payment-fulfillment-service/dao"
	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/gateway"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
	"github.com/fossandhra/payment-fulfillment-service/models"
	_ "github.com/fossandhra/payment-fulfillment-service/testing"
	"github.com/fossandhra/payment-fulfillment-service/testutil"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

const paymentID = "pay_1"
const differentPaymentID = "pay_2"
const orderID = "order_1"
const signature = "abc123signature"

func createMockService(t *testing.T, mockDao *dao.MockDAO, mockGateway *gateway.MockGateway, mockMailer *mailer.MockMailer) *Service {
	t.Helper()

	feeMap, err := config.GetMembershipFeeMap()
	if err != nil {
		t.Fatalf("error loading membership fee map: %s", err)
	}

	return &Service{
		DAO:     mockDao,
		Gateway: mockGateway,
		Mailer:  mockMailer,
		FeeMap:  feeMap,
	}
}

func TestUnitCreatePendingDonation(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Given a fulfillment service", t, func() {

		mockDao := dao.NewMockDAO(ctrl)
		svc := createMockService(t, mockDao, gateway.NewMockGateway(ctrl), mailer.NewMockMailer(ctrl))

		Convey("Amounts outside [100, 100000] are rejected", func() {

			for _, amount := range []int{0, 99, 100001, -500} {
				req := testutil.CreateDonationRequest()
				req.Amount = amount

				_, err := svc.CreatePendingDonation(req)

				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
			}
		})

		Convey("Boundary amounts 100 and 100000 are accepted", func() {

			for _, amount := range []int{100, 100000} {
				req := testutil.CreateDonationRequest()
				req.Amount = amount

				mockDao.EXPECT().CreateDonationResource(gomock.Any()).Return(nil)

				result, err := svc.CreatePendingDonation(req)

				So(err, ShouldBeNil)
				So(result.Status, ShouldEqual, models.DonationStatusPending)
				So(result.DonationID, ShouldNotBeEmpty)
			}
		})

		Convey("Non-anonymous donations require name, email and phone", func() {

			for _, mutate := range []func(*data.DonationRequest){
				func(r *data.DonationRequest) { r.Name = "" },
				func(r *data.DonationRequest) { r.Email = "" },
				func(r *data.DonationRequest) { r.Phone = "" },
			} {
				req := testutil.CreateDonationRequest()
				mutate(&req)

				_, err := svc.CreatePendingDonation(req)

				So(errors.Is(err, ErrValidation), ShouldBeTrue)
			}
		})

		Convey("Anonymous donations succeed without donor details", func() {

			req := data.DonationRequest{
				DonationType: "one-time",
				Amount:       500,
				Anonymous:    true,
			}

			var stored *models.DonationResourceDao
			mockDao.EXPECT().CreateDonationResource(gomock.Any()).DoAndReturn(func(donation *models.DonationResourceDao) error {
				stored = donation
				return nil
			})

			result, err := svc.CreatePendingDonation(req)

			So(err, ShouldBeNil)
			So(result.Status, ShouldEqual, models.DonationStatusPending)

			// a placeholder address on the reserved domain is synthesized
			So(stored.Email, ShouldEndWith, "@"+PlaceholderDomain)
			So(stored.Name, ShouldEqual, "Anonymous Donor")
		})

		Convey("Malformed email addresses are rejected", func() {

			req := testutil.CreateDonationRequest()
			req.Email = "not-an-email"

			_, err := svc.CreatePendingDonation(req)

			So(errors.Is(err, ErrValidation), ShouldBeTrue)
		})

		Convey("Malformed phone numbers are rejected", func() {

			req := testutil.CreateDonationRequest()
			req.Phone = "12345"

			_, err := svc.CreatePendingDonation(req)

			So(errors.Is(err, ErrValidation), ShouldBeTrue)
		})

		Convey("The donation type is normalized into the fixed vocabulary", func() {

			cases := map[string]string{
				"monthly":   "Monthly",
				"ONE-TIME":  "One-time",
				"yearly":    "Annual",
				"recurring": "Recurring",
				"":          "One-time",
				"special":   "special",
			}

			for raw, expected := range cases {
				req := testutil.CreateDonationRequest()
				req.DonationType = raw

				var stored *models.DonationResourceDao
				mockDao.EXPECT().CreateDonationResource(gomock.Any()).DoAndReturn(func(donation *models.DonationResourceDao) error {
					stored = donation
					return nil
				})

				_, err := svc.CreatePendingDonation(req)

				So(err, ShouldBeNil)
				So(stored.Type, ShouldEqual, expected)
			}
		})
	})
}

func TestUnitGetDonationCheckoutContext(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Given a fulfillment service", t, func() {

		mockDao := dao.NewMockDAO(ctrl)
		mockGateway := gateway.NewMockGateway(ctrl)
		svc := createMockService(t, mockDao, mockGateway, mailer.NewMockMailer(ctrl))

		Convey("An unknown donation id is a not found error", func() {

			mockDao.EXPECT().GetDonationResource("missing").Return(nil, nil)

			_, err := svc.GetDonationCheckoutContext(data.CheckoutRequest{DonationID: "missing"})

			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("A completed donation cannot be checked out again", func() {

			donation := testutil.CreateCompletedDonation(paymentID)
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)

			_, err := svc.GetDonationCheckoutContext(data.CheckoutRequest{DonationID: donation.ID.Hex()})

			So(errors.Is(err, ErrConflict), ShouldBeTrue)
		})

		Convey("A pending donation gets a gateway order in paise", func() {

			donation := testutil.CreatePendingDonation()
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)
			mockGateway.EXPECT().CreateOrder(donation.Amount*100, "INR", "").
				Return(gateway.Order{ID: orderID, Amount: donation.Amount * 100, Currency: "INR"}, nil)
			mockDao.EXPECT().AttachDonationOrder(donation.ID.Hex(), orderID).Return(nil)
			mockGateway.EXPECT().KeyID().Return("rzp_test_key")

			ctx, err := svc.GetDonationCheckoutContext(data.CheckoutRequest{DonationID: donation.ID.Hex()})

			So(err, ShouldBeNil)
			So(ctx.OrderID, ShouldEqual, orderID)
			So(ctx.Amount, ShouldEqual, 50000)
			So(ctx.Currency, ShouldEqual, "INR")
			So(ctx.KeyID, ShouldEqual, "rzp_test_key")
			So(ctx.Email, ShouldEqual, testutil.DonorEmail)
		})
	})
}

func TestUnitCompleteDonationPayment(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Given a fulfillment service", t, func() {

		mockDao := dao.NewMockDAO(ctrl)
		mockGateway := gateway.NewMockGateway(ctrl)
		mockMailer := mailer.NewMockMailer(ctrl)
		svc := createMockService(t, mockDao, mockGateway, mockMailer)

		Convey("Completing a pending donation marks it completed and sends a receipt", func() {

			donation := testutil.CreatePendingDonation()
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)
			mockDao.EXPECT().CompleteDonationResource(donation.ID.Hex(), paymentID, orderID, "").Return(true, nil)
			mockMailer.EXPECT().SendDonationReceipt(mailer.DonationReceipt{
				Name:      testutil.DonorName,
				Email:     testutil.DonorEmail,
				Amount:    donation.Amount,
				Type:      donation.Type,
				PaymentID: paymentID,
			}).Return(nil)

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeFalse)
		})

		Convey("A receipt email failure does not fail the completion", func() {

			donation := testutil.CreatePendingDonation()
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)
			mockDao.EXPECT().CompleteDonationResource(donation.ID.Hex(), paymentID, orderID, "").Return(true, nil)
			mockMailer.EXPECT().SendDonationReceipt(gomock.Any()).Return(errors.New("smtp unavailable"))

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeFalse)
		})

		Convey("No receipt is attempted for a placeholder donor address", func() {

			donation := testutil.CreatePendingDonation()
			donation.Email = "anonymous+1@" + PlaceholderDomain
			donation.Anonymous = true
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)
			mockDao.EXPECT().CompleteDonationResource(donation.ID.Hex(), paymentID, orderID, "").Return(true, nil)

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeFalse)
		})

		Convey("Completing twice with the same payment id is idempotent and sends no second receipt", func() {

			donation := testutil.CreateCompletedDonation(paymentID)
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeTrue)
		})

		Convey("Completing with a different payment id is a conflict", func() {

			donation := testutil.CreateCompletedDonation(paymentID)
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)

			_, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  differentPaymentID,
				OrderID:    orderID,
			})

			So(errors.Is(err, ErrConflict), ShouldBeTrue)
		})

		Convey("A late signature is backfilled onto a completed donation", func() {

			donation := testutil.CreateCompletedDonation(paymentID)
			donation.RazorpaySignature = ""
			mockGateway.EXPECT().VerifySignature(orderID, paymentID, signature).Return(true)
			mockDao.EXPECT().GetDonationResource(donation.ID.Hex()).Return(donation, nil)
			mockDao.EXPECT().BackfillDonationSignature(donation.ID.Hex(), signature).Return(nil)

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: donation.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
				Signature:  signature,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeTrue)
		})

		Convey("A bad signature is rejected before any state change", func() {

			mockGateway.EXPECT().VerifySignature(orderID, paymentID, signature).Return(false)

			_, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: "any",
				PaymentID:  paymentID,
				OrderID:    orderID,
				Signature:  signature,
			})

			So(errors.Is(err, ErrValidation), ShouldBeTrue)
		})

		Convey("An unknown donation id is a not found error", func() {

			mockDao.EXPECT().GetDonationResource("missing").Return(nil, nil)

			_, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: "missing",
				PaymentID:  paymentID,
			})

			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Losing the completion race falls back to the idempotency rules", func() {

			pending := testutil.CreatePendingDonation()
			completed := testutil.CreateCompletedDonation(paymentID)
			completed.ID = pending.ID

			mockDao.EXPECT().GetDonationResource(pending.ID.Hex()).Return(pending, nil)
			mockDao.EXPECT().CompleteDonationResource(pending.ID.Hex(), paymentID, orderID, "").Return(false, nil)
			mockDao.EXPECT().GetDonationResource(pending.ID.Hex()).Return(completed, nil)

			result, err := svc.CompleteDonationPayment(data.DonationCompletionRequest{
				DonationID: pending.ID.Hex(),
				PaymentID:  paymentID,
				OrderID:    orderID,
			})

			So(err, ShouldBeNil)
			So(result.AlreadyProcessed, ShouldBeTrue)
		})
	})
}
