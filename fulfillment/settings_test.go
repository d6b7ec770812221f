package fulfillment

import (
	"testing"

	"github.com/fossandhra/payment-fulfillment-service/dao"
	"github.com/fossandhra/payment-fulfillment-service/data"
	"github.com/fossandhra/payment-fulfillment-service/gateway"
	"github.com/fossandhra/payment-fulfillment-service/mailer"
	_ "github.com/fossandhra/payment-fulfillment-service/testing"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGetMembershipPaymentDefaults(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Given a fulfillment service", t, func() {

		mockDao := dao.NewMockDAO(ctrl)
		svc := createMockService(t, mockDao, gateway.NewMockGateway(ctrl), mailer.NewMockMailer(ctrl))

		Convey("Missing settings fall back to the defaults", func() {

			mockDao.EXPECT().GetSetting("membershipFee").Return("", nil)
			mockDao.EXPECT().GetSetting("membershipDuration").Return("", nil)

			defaults, err := svc.GetMembershipPaymentDefaults()

			So(err, ShouldBeNil)
			So(defaults.AnnualFee, ShouldEqual, DefaultAnnualFee)
			So(defaults.DurationMonths, ShouldEqual, DefaultDurationMonths)
		})

		Convey("Configured settings are parsed as integers", func() {

			mockDao.EXPECT().GetSetting("membershipFee").Return("500", nil)
			mockDao.EXPECT().GetSetting("membershipDuration").Return("6", nil)

			defaults, err := svc.GetMembershipPaymentDefaults()

			So(err, ShouldBeNil)
			So(defaults.AnnualFee, ShouldEqual, 500)
			So(defaults.DurationMonths, ShouldEqual, 6)
		})

		Convey("Non-positive and malformed values fall back to the defaults", func() {

			mockDao.EXPECT().GetSetting("membershipFee").Return("-5", nil)
			mockDao.EXPECT().GetSetting("membershipDuration").Return("twelve", nil)

			defaults, err := svc.GetMembershipPaymentDefaults()

			So(err, ShouldBeNil)
			So(defaults.AnnualFee, ShouldEqual, DefaultAnnualFee)
			So(defaults.DurationMonths, ShouldEqual, DefaultDurationMonths)
		})
	})
}

func TestUnitResolveMembershipAmount(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Given a fulfillment service", t, func() {

		svc := createMockService(t, dao.NewMockDAO(ctrl), gateway.NewMockGateway(ctrl), mailer.NewMockMailer(ctrl))
		defaults := data.PaymentDefaults{AnnualFee: 777, DurationMonths: 12}

		Convey("A recognised type resolves to its fixed fee regardless of defaults", func() {
			So(svc.ResolveMembershipAmount("FOSStar Lifetime", defaults), ShouldEqual, 5000)
			So(svc.ResolveMembershipAmount("fosstar lifetime", defaults), ShouldEqual, 5000)
			So(svc.ResolveMembershipAmount("  FOSStar Student ", defaults), ShouldEqual, 100)
		})

		Convey("An unrecognised type falls back to the default annual fee", func() {
			So(svc.ResolveMembershipAmount("unknown-type", defaults), ShouldEqual, 777)
			So(svc.ResolveMembershipAmount("", defaults), ShouldEqual, 777)
		})
	})
}
