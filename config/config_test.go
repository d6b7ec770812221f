package config

import (
	"testing"

	_ "github.com/fossandhra/payment-fulfillment-service/testing"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGetMembershipFeeMap(t *testing.T) {

	Convey("The membership fee map loads from the yaml asset", t, func() {

		feeMap, err := GetMembershipFeeMap()

		So(err, ShouldBeNil)
		So(feeMap, ShouldNotBeNil)

		Convey("Lookups are case and whitespace insensitive", func() {
			So(feeMap.Amount("FOSStar Lifetime"), ShouldEqual, 5000)
			So(feeMap.Amount(" fosstar annual "), ShouldEqual, 300)
		})

		Convey("Unknown types have no mapping", func() {
			So(feeMap.Amount("unknown-type"), ShouldEqual, 0)
		})
	})
}
