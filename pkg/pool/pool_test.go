//go:build go1.22

package pool_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/poolarena/pkg/pool"
)

func TestInit(t *testing.T) {
	Convey("Given a Pool", t, func() {
		var p pool.Pool

		Convey("When the region is nil", func() {
			err := p.Init(nil)

			Convey("Init fails with ErrBadInit", func() {
				So(err, ShouldEqual, pool.ErrBadInit)
			})
		})

		Convey("When the region is smaller than a free block header", func() {
			err := p.Init(make([]byte, pool.WordSize))

			Convey("Init fails with ErrBadInit", func() {
				So(err, ShouldEqual, pool.ErrBadInit)
			})
		})

		Convey("When the region is large enough to hold one free block", func() {
			region := make([]byte, 4096)
			err := p.Init(region)

			Convey("Init succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("The whole region is reported as capacity", func() {
				So(p.Cap(), ShouldEqual, len(region))
			})

			Convey("Nothing is allocated yet", func() {
				So(p.Allocated(), ShouldEqual, 0)
			})

			Convey("Free bytes is the region minus one header word", func() {
				So(p.FreeBytes(), ShouldEqual, len(region)-pool.WordSize)
			})

			Convey("Check agrees with zero bytes in use", func() {
				So(p.Check(0), ShouldBeNil)
			})
		})
	})
}
