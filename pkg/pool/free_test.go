//go:build go1.22

package pool_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/poolarena/pkg/pool"
)

func TestFree(t *testing.T) {
	Convey("Given an initialized Pool", t, func() {
		var p pool.Pool
		So(p.Init(make([]byte, 4096)), ShouldBeNil)

		Convey("When freeing nil", func() {
			err := p.Free(nil)

			Convey("it is a no-op", func() {
				So(err, ShouldBeNil)
				So(p.Allocated(), ShouldEqual, 0)
			})
		})

		Convey("When allocating then freeing the only block", func() {
			freeBefore := p.FreeBytes()
			ptr := p.Alloc(64)
			So(ptr, ShouldNotEqual, pool.AllocFailed)

			err := p.Free(ptr)

			Convey("Free succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("all byte counters return to their initial values", func() {
				So(p.Allocated(), ShouldEqual, 0)
				So(p.FreeBytes(), ShouldEqual, freeBefore)
			})

			Convey("Check agrees with zero bytes in use", func() {
				So(p.Check(0), ShouldBeNil)
			})

			Convey("the reclaimed space can satisfy a later allocation", func() {
				again := p.Alloc(64)
				So(again, ShouldNotEqual, pool.AllocFailed)
			})
		})

		Convey("When freeing the middle of three adjacent blocks (both-neighbor merge)", func() {
			a := p.Alloc(32)
			b := p.Alloc(32)
			c := p.Alloc(32)
			So(p.Free(a), ShouldBeNil)
			So(p.Free(c), ShouldBeNil)

			err := p.Free(b)

			Convey("Free succeeds and the three free segments collapse into one", func() {
				So(err, ShouldBeNil)
				So(p.Check(0), ShouldBeNil)
			})

			Convey("the reclaimed run can satisfy one larger allocation", func() {
				big := p.Alloc(32*3 + 2*pool.WordSize)
				So(big, ShouldNotEqual, pool.AllocFailed)
			})
		})

		Convey("When freeing a block with only a left free neighbor", func() {
			a := p.Alloc(32)
			b := p.Alloc(32)
			_ = p.Alloc(32) // keep a right-hand allocated block so there's no right merge
			So(p.Free(a), ShouldBeNil)

			err := p.Free(b)

			Convey("Free succeeds and merges leftward", func() {
				So(err, ShouldBeNil)
				So(p.Check(32), ShouldBeNil)
			})
		})

		Convey("When freeing a block with only a right free neighbor", func() {
			_ = p.Alloc(32) // keep a left-hand allocated block so there's no left merge
			b := p.Alloc(32)
			c := p.Alloc(32)
			So(p.Free(c), ShouldBeNil)

			err := p.Free(b)

			Convey("Free succeeds and merges rightward", func() {
				So(err, ShouldBeNil)
				So(p.Check(32), ShouldBeNil)
			})
		})

		Convey("When freeing a block with no adjacent free neighbor", func() {
			a := p.Alloc(32)
			_ = p.Alloc(32)
			c := p.Alloc(32)
			_ = p.Alloc(32)
			_ = a

			err := p.Free(c)

			Convey("Free succeeds and the block stands alone in the free list", func() {
				So(err, ShouldBeNil)
				So(p.Check(32*3), ShouldBeNil)
			})
		})
	})
}

func TestRealloc(t *testing.T) {
	Convey("Given an initialized Pool with a live block", t, func() {
		var p pool.Pool
		So(p.Init(make([]byte, 4096)), ShouldBeNil)

		ptr := p.Alloc(pool.WordSize)
		So(ptr, ShouldNotEqual, pool.AllocFailed)
		fillBytes(ptr, pool.WordSize, 0xAB)

		Convey("When growing it", func() {
			grown := p.Realloc(ptr, 4*pool.WordSize)

			Convey("the new block preserves the original bytes", func() {
				So(grown, ShouldNotBeNil)
				buf := unsafeBytes(grown, pool.WordSize)
				for _, b := range buf {
					So(b, ShouldEqual, byte(0xAB))
				}
			})

			Convey("Check agrees with the grown block's size", func() {
				So(p.Check(p.SizeOf(grown)), ShouldBeNil)
			})
		})

		Convey("When realloc is given nil", func() {
			fresh := p.Realloc(nil, pool.WordSize)

			Convey("it behaves like Alloc", func() {
				So(fresh, ShouldNotEqual, pool.AllocFailed)
				So(fresh, ShouldNotBeNil)
			})
		})

		Convey("When the new size cannot be satisfied", func() {
			result := p.Realloc(ptr, 1<<20)

			Convey("it returns nil and leaves the original block untouched", func() {
				So(result, ShouldBeNil)
				So(p.SizeOf(ptr), ShouldEqual, pool.WordSize)
			})
		})
	})
}
