package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/cli"
	"github.com/m-mizutani/gt"
)

const registryCSV = `title,type,publication_date,document_number
"Case 2018-001",Rule,01/05/2019,2019-00001
"Case 2018-002",Proposed Rule,01/20/2019,2019-00002
"Technical Amendments",Rule,03/01/2019,2019-00003
`

type fakeRegistry struct {
	*httptest.Server
	mu      sync.Mutex
	queries []url.Values
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	t.Helper()
	f := &fakeRegistry{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.Query())
		f.mu.Unlock()
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(registryCSV))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeRegistry) Queries() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values{}, f.queries...)
}

type result struct {
	out    string
	errOut string
	err    error
}

func runCLI(in string, args ...string) result {
	var out, errOut bytes.Buffer
	err := cli.RunWithIO(context.Background(), append([]string{"frtally"}, args...),
		strings.NewReader(in), &out, &errOut)
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func globalArgs(t *testing.T) []string {
	return []string{"--log-level", "error", "--log-format", "json", "--db", filepath.Join(t.TempDir(), "frtally.db")}
}

func TestPullCommand(t *testing.T) {
	t.Run("csv output from flags", func(t *testing.T) {
		registry := newFakeRegistry(t)
		args := append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--cache-ttl", "0",
			"--from", "01/01/2019",
			"--to", "03/31/2019",
			"--output", "csv",
		)

		r := runCLI("", args...)
		gt.NoError(t, r.err).Required()
		gt.Equal(t, r.out, "month,count\n2019-01,2\n2019-02,0\n2019-03,1\n")

		queries := registry.Queries()
		gt.A(t, queries).Length(1)
		gt.Equal(t, queries[0].Get("conditions[publication_date][gte]"), "01/01/2019")
		gt.Equal(t, queries[0].Get("conditions[term]"), `"Federal Acquisition Regulation"`)
		gt.Equal(t, queries[0]["conditions[type][]"], []string{"RULE", "PRORULE"})
	})

	t.Run("prompts for missing dates and re-prompts on bad input", func(t *testing.T) {
		registry := newFakeRegistry(t)
		args := append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--output", "table",
		)

		r := runCLI("2019-01-01\n1/1/2019\n03/31/2019\n", args...)
		gt.NoError(t, r.err).Required()
		gt.S(t, r.out).Contains("Extract data from date (MM/DD/YYYY): ")
		gt.S(t, r.out).Contains("Extract data until date (MM/DD/YYYY): ")
		gt.Equal(t, strings.Count(r.out, cli.RetryMessage), 1)
		gt.S(t, r.out).Contains("Calculations based on FR notices published from 01/01/2019 to 03/31/2019.")
		gt.S(t, r.out).Contains("Records retrieved: 3")
		gt.S(t, r.out).Contains("Total")
	})

	t.Run("chart output with include-notices", func(t *testing.T) {
		registry := newFakeRegistry(t)
		args := append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--from", "01/01/2019",
			"--to", "03/31/2019",
			"--include-notices",
		)

		r := runCLI("", args...)
		gt.NoError(t, r.err).Required()
		gt.S(t, r.out).Contains("Federal Register notices, by year and month")
		gt.S(t, r.out).Contains("2019-02 │")
		gt.Equal(t, registry.Queries()[0]["conditions[type][]"], []string{"RULE", "PRORULE", "NOTICE"})
	})

	t.Run("profile supplies the term and flags override it", func(t *testing.T) {
		registry := newFakeRegistry(t)
		profile := filepath.Join(t.TempDir(), "profile.yaml")
		gt.NoError(t, os.WriteFile(profile, []byte("term: Small Business\ntypes: [RULE]\nbound: requested\n"), 0o600)).Required()

		args := append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--profile", profile,
			"--from", "12/01/2018",
			"--to", "03/31/2019",
			"--output", "json",
		)
		r := runCLI("", args...)
		gt.NoError(t, r.err).Required()

		var view struct {
			Policy string `json:"bound_policy"`
			Series []struct {
				Month string `json:"month"`
			} `json:"series"`
		}
		gt.NoError(t, json.Unmarshal([]byte(r.out), &view)).Required()
		gt.Equal(t, view.Policy, "requested")
		gt.A(t, view.Series).Length(4)
		gt.Equal(t, view.Series[0].Month, "2018-12")

		q := registry.Queries()[0]
		gt.Equal(t, q.Get("conditions[term]"), `"Small Business"`)
		gt.Equal(t, q["conditions[type][]"], []string{"RULE"})

		args = append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--profile", profile,
			"--term", "Cybersecurity",
			"--from", "01/01/2019",
			"--to", "03/31/2019",
			"--output", "csv",
		)
		r = runCLI("", args...)
		gt.NoError(t, r.err).Required()
		gt.Equal(t, registry.Queries()[1].Get("conditions[term]"), `"Cybersecurity"`)
	})

	t.Run("runs out of input while prompting", func(t *testing.T) {
		registry := newFakeRegistry(t)
		args := append(globalArgs(t), "pull", "--registry-url", registry.URL, "--output", "csv")

		r := runCLI("", args...)
		gt.Error(t, r.err)
		gt.A(t, registry.Queries()).Length(0)
	})

	t.Run("inverted range is rejected before searching", func(t *testing.T) {
		registry := newFakeRegistry(t)
		args := append(globalArgs(t), "pull",
			"--registry-url", registry.URL,
			"--from", "03/31/2019",
			"--to", "01/01/2019",
		)

		r := runCLI("", args...)
		gt.Error(t, r.err)
		gt.A(t, registry.Queries()).Length(0)
	})

	t.Run("unknown output format", func(t *testing.T) {
		r := runCLI("", append(globalArgs(t), "pull", "--from", "01/01/2019", "--to", "03/31/2019", "--output", "xml")...)
		gt.Error(t, r.err)
	})

	t.Run("unknown bound policy", func(t *testing.T) {
		r := runCLI("", append(globalArgs(t), "pull", "--from", "01/01/2019", "--to", "03/31/2019", "--bound", "all")...)
		gt.Error(t, r.err)
	})
}

func TestHistoryCommand(t *testing.T) {
	registry := newFakeRegistry(t)
	db := filepath.Join(t.TempDir(), "history.db")
	global := []string{"--log-level", "error", "--db", db}

	for _, to := range []string{"03/31/2019", "02/28/2019"} {
		r := runCLI("", append(append([]string{}, global...), "pull",
			"--registry-url", registry.URL,
			"--from", "01/01/2019",
			"--to", to,
			"--output", "csv",
		)...)
		gt.NoError(t, r.err).Required()
	}

	t.Run("json", func(t *testing.T) {
		r := runCLI("", append(append([]string{}, global...), "history", "--output", "json")...)
		gt.NoError(t, r.err).Required()

		var pulls []struct {
			ID    string `json:"id"`
			Total int    `json:"total"`
			Query struct {
				To time.Time `json:"to"`
			} `json:"query"`
		}
		gt.NoError(t, json.Unmarshal([]byte(r.out), &pulls)).Required()
		gt.A(t, pulls).Length(2)
		gt.Equal(t, pulls[0].Total, 3)
	})

	t.Run("limit", func(t *testing.T) {
		r := runCLI("", append(append([]string{}, global...), "history", "--limit", "1", "--output", "json")...)
		gt.NoError(t, r.err).Required()

		var pulls []json.RawMessage
		gt.NoError(t, json.Unmarshal([]byte(r.out), &pulls)).Required()
		gt.A(t, pulls).Length(1)
	})

	t.Run("table", func(t *testing.T) {
		r := runCLI("", append(append([]string{}, global...), "history")...)
		gt.NoError(t, r.err).Required()
		gt.S(t, r.out).Contains("RECORDS")
		gt.S(t, r.out).Contains("01/01/2019-03/31/2019")
		gt.S(t, r.out).Contains("Federal Acquisition Regulation")
	})

	t.Run("empty history", func(t *testing.T) {
		r := runCLI("", "--log-level", "error", "--db", filepath.Join(t.TempDir(), "empty.db"), "history")
		gt.NoError(t, r.err).Required()
		gt.Equal(t, r.out, "No pulls stored.\n")
	})
}

func TestGlobalFlags(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		r := runCLI("", "--log-level", "loud", "history")
		gt.Error(t, r.err)
	})

	t.Run("logs go to the error writer", func(t *testing.T) {
		registry := newFakeRegistry(t)
		r := runCLI("", "--log-level", "debug", "--log-format", "json",
			"--db", filepath.Join(t.TempDir(), "frtally.db"),
			"pull", "--registry-url", registry.URL, "--from", "01/01/2019", "--to", "03/31/2019", "--output", "csv")
		gt.NoError(t, r.err).Required()
		gt.S(t, r.errOut).Contains(`"msg":"Starting pull"`)
		gt.False(t, strings.Contains(r.out, `"msg"`))
	})
}
