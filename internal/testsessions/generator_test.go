package testsessions

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a fixed clock", t, func() {
		now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

		Convey("When generating a batch", func() {
			sessions, err := Generate(context.Background(), Config{Count: 200, Now: now})
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 200)

			Convey("Then every session is well formed", func() {
				ids := make(map[string]bool)
				for _, s := range sessions {
					ids[s.ID.String()] = true
					So(s.StartTime.After(now), ShouldBeFalse)
					So(DefaultSports, ShouldContain, s.Sport)
					if s.Ended() {
						So(s.EndTime.After(s.StartTime), ShouldBeTrue)
						So(*s.DurationSeconds, ShouldBeGreaterThan, 0)
					} else {
						So(s.DurationSeconds, ShouldBeNil)
					}
					if !s.IsMatch() {
						So(s.ScoreMe, ShouldEqual, 0)
					}
				}
				So(ids, ShouldHaveLength, 200)
			})
		})

		Convey("When restricting sports", func() {
			sessions, err := Generate(context.Background(), Config{Count: 20, Sports: []string{"squash"}, Now: now})
			So(err, ShouldBeNil)
			for _, s := range sessions {
				So(s.Sport, ShouldEqual, "squash")
			}
		})

		Convey("When the count is not positive", func() {
			_, err := Generate(context.Background(), Config{Count: 0})
			So(errors.Is(err, ErrInvalidCount), ShouldBeTrue)
		})

		Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := Generate(ctx, Config{Count: 5})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
