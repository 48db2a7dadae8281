package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/okian/courtfmt/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSessionView(t *testing.T) {
	Convey("Given a SessionView for a running session", t, func() {
		view := types.SessionView{
			ID:               "abc",
			Sport:            "Squash",
			Type:             "Training",
			Date:             "Jan 15, 10:00 AM",
			DetailedDate:     "Monday, January 15, 2024 at 10:00 AM",
			Duration:         "In progress",
			DetailedDuration: "In progress",
			InProgress:       true,
		}

		Convey("When encoding to JSON", func() {
			b, err := json.Marshal(view)
			So(err, ShouldBeNil)

			Convey("Then empty optional fields are omitted", func() {
				So(string(b), ShouldNotContainSubstring, `"clock"`)
				So(string(b), ShouldNotContainSubstring, `"score"`)
				So(string(b), ShouldContainSubstring, `"in_progress":true`)
				So(string(b), ShouldContainSubstring, `"rallies":0`)
			})
		})
	})

	Convey("Given a Value", t, func() {
		b, err := json.Marshal(types.Value{Value: "1:05"})
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, `{"value":"1:05"}`)
	})
}
