package registry

import (
	"context"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
)

// TestTokenAmount verifies the balance check, the only tool that does not
// pass the payload through untouched.
func TestTokenAmount(t *testing.T) {
	Convey("Given a balance tool", t, func() {
		Convey("When the account balance is a number", func() {
			srv, captured := newBackend(http.StatusOK, `100.5`)
			defer srv.Close()

			tool := NewTokenAmountTool(rejestr.New(srv.URL, "key"))
			result, err := tool.Handler(context.Background(), newMockRequest("get_token_amount", nil))

			Convey("It should render the value with a PLN suffix", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				So(resultText(result), ShouldEqual, "100.5 PLN")
				So(captured.lastPath(), ShouldEqual, "/konto/stan")
			})
		})

		Convey("When the remote rejects the request", func() {
			srv, _ := newBackend(http.StatusUnauthorized, `{"komunikat":"brak autoryzacji"}`)
			defer srv.Close()

			tool := NewTokenAmountTool(rejestr.New(srv.URL, "missing-key"))
			result, err := tool.Handler(context.Background(), newMockRequest("get_token_amount", nil))

			Convey("It should return the uniform error result", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(resultText(result), ShouldStartWith, "An error occurred: ")
				So(resultText(result), ShouldContainSubstring, "401")
			})
		})
	})
}
