package registry

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
)

// TestKRSLookupPassesIDThrough verifies that zero-padded and bare KRS numbers
// both reach the remote unmodified; no local padding or stripping happens.
func TestKRSLookupPassesIDThrough(t *testing.T) {
	Convey("Given a KRS lookup tool", t, func() {
		srv, captured := newBackend(http.StatusOK, `{"id":12345}`)
		defer srv.Close()

		tool := NewCompanyByKRSTool(rejestr.New(srv.URL, "key"))

		Convey("When called with a zero-padded id", func() {
			result, err := tool.Handler(context.Background(), newMockRequest("get_company_info_using_krs", map[string]interface{}{"krs": "0000012345"}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)
			So(captured.lastPath(), ShouldEqual, "/org/0000012345")
		})

		Convey("When called with a bare id", func() {
			result, err := tool.Handler(context.Background(), newMockRequest("get_company_info_using_krs", map[string]interface{}{"krs": "12345"}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeFalse)
			So(captured.lastPath(), ShouldEqual, "/org/12345")
		})
	})
}

// TestNameSearchEncoding verifies that the search term is query-encoded while
// the org?nazwa= template is preserved.
func TestNameSearchEncoding(t *testing.T) {
	Convey("Given a name search tool", t, func() {
		srv, captured := newBackend(http.StatusOK, `{"liczba_wszystkich_wynikow":0,"wyniki":[]}`)
		defer srv.Close()

		tool := NewCompanySearchTool(rejestr.New(srv.URL, "key"))

		Convey("When searching for a name with spaces and diacritics", func() {
			name := "Spółka Testowa"
			result, err := tool.Handler(context.Background(), newMockRequest("get_company_info_using_name", map[string]interface{}{"name": name}))

			Convey("It should encode the term under the nazwa parameter", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)
				So(captured.lastPath(), ShouldEqual, "/org")

				values, parseErr := url.ParseQuery(captured.lastQuery())
				So(parseErr, ShouldBeNil)
				So(values.Get("nazwa"), ShouldEqual, name)
			})
		})
	})
}
