package qstate

import (
	"context"
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/floats"
)

func TestGeneralizedQ(t *testing.T) {
	Convey("Given the generalized Q-function sampler", t, func() {
		ket, err := Cat(8, 1.5, 0, 0)
		So(err, ShouldBeNil)
		rho := ket.DM()

		xvec := make([]float64, 6)
		yvec := make([]float64, 4)
		floats.Span(xvec, -2, 2)
		floats.Span(yvec, -1, 1)

		Convey("It should produce a tensor shaped (len(yvec), len(xvec), n)", func() {
			tensor, err := GeneralizedQ(rho, xvec, yvec)
			So(err, ShouldBeNil)
			So(tensor.Rows, ShouldEqual, 4)
			So(tensor.Cols, ShouldEqual, 6)
			So(tensor.Dim, ShouldEqual, 8)

			for i := 0; i < tensor.Rows; i++ {
				for j := 0; j < tensor.Cols; j++ {
					So(floats.Sum(tensor.At(i, j)), ShouldAlmostEqual, 1.0, 1e-8)
				}
			}
		})

		Convey("It should honor the row-major ordering contract", func() {
			tensor, err := GeneralizedQ(rho, xvec, yvec)
			So(err, ShouldBeNil)

			alpha := complex(xvec[2], yvec[1]) / complex(math.Sqrt2, 0)
			populations, err := Measure(alpha, rho)
			So(err, ShouldBeNil)

			cell := tensor.At(1, 2)
			for k := range populations {
				So(cell[k], ShouldEqual, populations[k])
			}
		})

		Convey("It should produce identical output for parallel scans", func() {
			sequential, err := GeneralizedQ(rho, xvec, yvec, WithWorkers(1))
			So(err, ShouldBeNil)
			parallel, err := GeneralizedQ(rho, xvec, yvec, WithWorkers(4))
			So(err, ShouldBeNil)

			for i := 0; i < sequential.Rows; i++ {
				for j := 0; j < sequential.Cols; j++ {
					seq, par := sequential.At(i, j), parallel.At(i, j)
					for k := range seq {
						So(par[k], ShouldEqual, seq[k])
					}
				}
			}
		})

		Convey("It should count every cell in the sampler metrics", func() {
			sampler := NewSampler(WithWorkers(2))
			_, err := sampler.GeneralizedQ(context.Background(), rho, xvec, yvec)
			So(err, ShouldBeNil)
			So(sampler.Metrics().CellCount, ShouldEqual, int64(len(xvec)*len(yvec)))

			exported := sampler.Metrics().ExportMetrics()
			So(exported["cell_count"], ShouldEqual, int64(24))
		})

		Convey("It should stop on a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := NewSampler().GeneralizedQ(ctx, rho, xvec, yvec)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("It should reject empty grid axes", func() {
			_, err := GeneralizedQ(rho, nil, yvec)
			So(err, ShouldNotBeNil)
		})
	})
}
