package qstate

import (
	"errors"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCat(t *testing.T) {
	Convey("Given the cat state builder", t, func() {
		Convey("It should build the two-component cat", func() {
			ket, err := Cat(8, 2, 0, 0)
			So(err, ShouldBeNil)
			So(len(ket), ShouldEqual, 8)
			So(ket.Norm(), ShouldAlmostEqual, 1.0, 1e-9)

			// |alpha> + |-alpha> only populates even photon numbers.
			for k := 1; k < 8; k += 2 {
				So(cmplx.Abs(ket[k]), ShouldAlmostEqual, 0.0, 1e-12)
			}

			rho := ket.DM()
			So(rho.Dim(), ShouldEqual, 8)
			So(real(rho.Trace()), ShouldAlmostEqual, 1.0, 1e-9)
			So(rho.IsHermitian(1e-12), ShouldBeTrue)
		})

		Convey("It should build a four-component cat", func() {
			ket, err := Cat(16, 2.5, 1, 0)
			So(err, ShouldBeNil)
			So(len(ket), ShouldEqual, 16)
			So(ket.Norm(), ShouldAlmostEqual, 1.0, 1e-9)
			So(ket.DM().IsHermitian(1e-12), ShouldBeTrue)
		})

		Convey("It should separate the two logical codewords", func() {
			zero, err := Cat(32, 2.5, 1, 0)
			So(err, ShouldBeNil)
			one, err := Cat(32, 2.5, 1, 1)
			So(err, ShouldBeNil)

			overlap, err := zero.Overlap(one)
			So(err, ShouldBeNil)
			So(cmplx.Abs(overlap), ShouldBeLessThan, 0.5)
		})

		Convey("It should surface a cancelled superposition as degenerate input", func() {
			// alpha = 0 with s = 1, mu = 1 sums +2|0> and -2|0>.
			_, err := Cat(8, 0, 1, 1)
			So(errors.Is(err, ErrDegenerateInput), ShouldBeTrue)
		})

		Convey("It should reject invalid parameters", func() {
			_, err := Cat(8, 2, -1, 0)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)

			_, err = Cat(8, 2, 0, 2)
			So(errors.Is(err, ErrConfiguration), ShouldBeTrue)
		})
	})
}
