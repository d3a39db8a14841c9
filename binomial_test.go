package qstate

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBinomial(t *testing.T) {
	Convey("Given the binomial code builder", t, func() {
		Convey("It should place weighted amplitudes on the (s+1)-spaced comb", func() {
			ket, err := Binomial(20, 1, 3, 0)
			So(err, ShouldBeNil)
			So(ket.Norm(), ShouldAlmostEqual, 1.0, 1e-12)

			// Support is exactly fock 0, 2, 4: the sum excludes m = order.
			for k := range ket {
				if k != 0 && k != 2 && k != 4 {
					So(cmplx.Abs(ket[k]), ShouldEqual, 0.0)
				}
			}

			// Pre-normalization weights sqrt(C(4,m))/4 survive as ratios.
			So(real(ket[2])/real(ket[0]), ShouldAlmostEqual, 2.0, 1e-12)
			So(real(ket[4])/real(ket[0]), ShouldAlmostEqual, math.Sqrt(6), 1e-12)
		})

		Convey("It should alternate signs for the logical one codeword", func() {
			ket, err := Binomial(20, 1, 3, 1)
			So(err, ShouldBeNil)
			So(real(ket[0]), ShouldBeGreaterThan, 0)
			So(real(ket[2]), ShouldBeLessThan, 0)
			So(real(ket[4]), ShouldBeGreaterThan, 0)
		})

		Convey("It should derive the default order from the truncation", func() {
			// floor(16/2) - 1 = 7 terms at indices 0..12.
			ket, err := Binomial(16, 1, -1, 0)
			So(err, ShouldBeNil)
			So(ket.Norm(), ShouldAlmostEqual, 1.0, 1e-12)
			So(cmplx.Abs(ket[12]), ShouldBeGreaterThan, 0)
			So(cmplx.Abs(ket[14]), ShouldEqual, 0.0)
		})

		Convey("It should treat an explicit zero order as degenerate", func() {
			_, err := Binomial(8, 1, 0, 0)
			So(errors.Is(err, ErrDegenerateInput), ShouldBeTrue)
		})

		Convey("It should reject codes that overflow the basis", func() {
			_, err := Binomial(8, 3, 4, 0)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("It should draw random orders within the default bound", func() {
			rng := rand.New(rand.NewPCG(3, 5))
			def := DefaultBinomialOrder(20, 1)
			for i := 0; i < 50; i++ {
				order := RandomBinomialOrder(20, 1, rng)
				So(order, ShouldBeBetweenOrEqual, 0, def)
			}

			// The fallback without a source is the default order itself.
			So(RandomBinomialOrder(20, 1, nil), ShouldEqual, def)
		})
	})
}
