package service_test

import (
	"context"
	"fmt"
	"testing"

	app "github.com/okian/courtfmt/internal/app"
	"github.com/okian/courtfmt/internal/testsessions"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_PresentGenerated(t *testing.T) {
	Convey("Given a generated batch", t, func() {
		ctx := context.Background()
		sessions, err := testsessions.Generate(ctx, testsessions.Config{Count: 300})
		So(err, ShouldBeNil)

		Convey("When presenting it with a small worker pool", func() {
			views, err := app.New(app.WithWorkerCount(3)).PresentAll(ctx, sessions)
			So(err, ShouldBeNil)
			So(views, ShouldHaveLength, len(sessions))

			Convey("Then order and ids are preserved", func() {
				for i, v := range views {
					So(v.ID, ShouldEqual, sessions[i].ID.String())
					So(v.InProgress, ShouldEqual, !sessions[i].Ended())
				}
			})
		})
	})
}

func BenchmarkPresentAll(b *testing.B) {
	ctx := context.Background()
	for _, size := range []int{1, 50, 500} {
		sessions, err := testsessions.Generate(ctx, testsessions.Config{Count: size})
		if err != nil {
			b.Fatal(err)
		}
		svc := app.New()
		b.Run(fmt.Sprintf("batch=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := svc.PresentAll(ctx, sessions); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
