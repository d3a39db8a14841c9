package qstate

import (
	"errors"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGKP(t *testing.T) {
	Convey("Given the GKP state builder", t, func() {
		Convey("It should produce a unit-norm lattice state", func() {
			ket, err := GKP(32, 0.35, 0, 20)
			So(err, ShouldBeNil)
			So(len(ket), ShouldEqual, 32)
			So(ket.Norm(), ShouldAlmostEqual, 1.0, 1e-9)

			rho := ket.DM()
			So(real(rho.Trace()), ShouldAlmostEqual, 1.0, 1e-9)
			So(rho.IsHermitian(1e-12), ShouldBeTrue)
		})

		Convey("It should separate the two logical codewords", func() {
			zero, err := GKP(32, 0.35, 0, 20)
			So(err, ShouldBeNil)
			one, err := GKP(32, 0.35, 1, 20)
			So(err, ShouldBeNil)

			overlap, err := zero.Overlap(one)
			So(err, ShouldBeNil)
			So(cmplx.Abs(overlap), ShouldBeLessThan, 0.5)
		})

		Convey("It should ignore the lattice range argument", func() {
			narrow, err := GKP(24, 0.4, 0, 5)
			So(err, ShouldBeNil)
			wide, err := GKP(24, 0.4, 0, 100)
			So(err, ShouldBeNil)

			for k := range narrow {
				So(narrow[k], ShouldEqual, wide[k])
			}
		})

		Convey("It should reject an invalid logical selector", func() {
			_, err := GKP(24, 0.4, 3, 20)
			So(errors.Is(err, ErrConfiguration), ShouldBeTrue)
		})
	})
}
