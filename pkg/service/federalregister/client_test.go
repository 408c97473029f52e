package federalregister_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/federalregister"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func testQuery() *model.Query {
	return &model.Query{
		From:  time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:    time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
		Term:  model.DefaultSearchTerm,
		Types: types.DefaultDocumentTypes(),
	}
}

const sampleCSV = `title,type,agency_names,html_url,publication_date,document_number
"Federal Acquisition Regulation; Case 2018-001",Rule,"Defense Department; General Services Administration; National Aeronautics and Space Administration",https://www.federalregister.gov/d/2019-00001,01/05/2019,2019-00001
"Federal Acquisition Regulation; Case 2018-002",Proposed Rule,General Services Administration,https://www.federalregister.gov/d/2019-00002,01/20/2019,2019-00002
"Federal Acquisition Regulation; Technical Amendments",Rule,,https://www.federalregister.gov/d/2019-00003,03/01/2019,2019-00003
`

func TestBuildURL(t *testing.T) {
	raw := federalregister.BuildURL(federalregister.DefaultBaseURL, testQuery())

	u, err := url.Parse(raw)
	gt.NoError(t, err).Required()
	gt.Equal(t, u.Scheme+"://"+u.Host+u.Path, federalregister.DefaultBaseURL)

	q := u.Query()
	gt.Equal(t, q.Get("format"), "csv")
	gt.Equal(t, q.Get("conditions[publication_date][gte]"), "01/01/2017")
	gt.Equal(t, q.Get("conditions[publication_date][lte]"), "12/31/2019")
	gt.Equal(t, q.Get("conditions[term]"), `"Federal Acquisition Regulation"`)
	gt.Equal(t, q["conditions[type][]"], []string{"RULE", "PRORULE"})

	// brackets and slashes are percent-encoded like the registry's own links
	gt.S(t, raw).Contains("conditions%5Bpublication_date%5D%5Bgte%5D=01%2F01%2F2017")
}

func TestClientSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("parses notices from the csv export", func(t *testing.T) {
		var gotQuery url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(sampleCSV))
		}))
		defer srv.Close()

		client := federalregister.New(federalregister.WithBaseURL(srv.URL))
		result, err := client.Search(ctx, testQuery())
		gt.NoError(t, err).Required()

		gt.Equal(t, gotQuery.Get("format"), "csv")
		gt.S(t, result.URL).Contains(srv.URL)
		gt.Equal(t, result.URL, client.SearchURL(testQuery()))
		gt.False(t, result.Truncated)
		gt.A(t, result.Notices).Length(3)

		first := result.Notices[0]
		gt.Equal(t, first.DocumentNumber, "2019-00001")
		gt.Equal(t, first.PublicationDate, "01/05/2019")
		gt.Equal(t, first.Type, "Rule")
		gt.Equal(t, first.Agencies, []string{
			"Defense Department",
			"General Services Administration",
			"National Aeronautics and Space Administration",
		})
		gt.True(t, result.Notices[2].Agencies == nil)
	})

	t.Run("marks result truncated at the record cap", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var b strings.Builder
			b.WriteString("document_number,publication_date\n")
			for i := 0; i < 3; i++ {
				fmt.Fprintf(&b, "2019-%05d,02/%02d/2019\n", i, i+1)
			}
			_, _ = w.Write([]byte(b.String()))
		}))
		defer srv.Close()

		client := federalregister.New(
			federalregister.WithBaseURL(srv.URL),
			federalregister.WithMaxRecords(3),
		)
		result, err := client.Search(ctx, testQuery())
		gt.NoError(t, err).Required()
		gt.True(t, result.Truncated)
	})

	t.Run("error status is a registry error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := federalregister.New(federalregister.WithBaseURL(srv.URL))
		_, err := client.Search(ctx, testQuery())
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagRegistry)).True()
		gt.V(t, goerr.Values(err)["status"]).Equal(http.StatusServiceUnavailable)
	})

	t.Run("invalid query is rejected before any request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		q := testQuery()
		q.From, q.To = q.To, q.From

		client := federalregister.New(federalregister.WithBaseURL(srv.URL))
		_, err := client.Search(ctx, q)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvertedRange)).True()
		gt.False(t, called)
	})

	t.Run("timeout is a registry error", func(t *testing.T) {
		done := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-done:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(done)

		client := federalregister.New(
			federalregister.WithBaseURL(srv.URL),
			federalregister.WithTimeout(50*time.Millisecond),
		)
		_, err := client.Search(ctx, testQuery())
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagRegistry)).True()
	})
}
