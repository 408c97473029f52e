package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Intro explains the command before any prompt
const Intro = `This tool extracts data from the FederalRegister.gov site jointly run by the National Archives
and Records Administration (NARA) and the U.S. Government Publishing Office (GPO).
It pulls final rules and proposed rules that pertain to the search term and tallies them by month.
WARNING: There's a max of 1,000 records, so if your search applies to more than that, the data
will be incomplete.
`

// WriteSummary describes where the data came from and what it covers
func (r *Renderer) WriteSummary(w io.Writer, pull *model.Pull) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Accessing data from:\n%s\n\n", pull.URL)
	fmt.Fprintf(&b, "Calculations based on FR notices published from %s to %s.\n",
		model.FormatDate(pull.Query.From), model.FormatDate(pull.Query.To))
	b.WriteString(r.printer.Sprintf("Records retrieved: %d\n", pull.RecordCount))

	if pull.Truncated {
		b.WriteString(r.printer.Sprintf("WARNING: the registry returned %d records, its maximum. Later notices are missing.\n",
			pull.RecordCount))
	}
	switch {
	case pull.Observed == nil:
		fmt.Fprintf(&b, "NOTE: no notices were found between %s and %s.\n",
			pull.Requested.Lower, pull.Requested.Upper)
	case pull.RangeShrunk():
		fmt.Fprintf(&b, "NOTE: notices were found only from %s to %s, not the full %s to %s requested.\n",
			pull.Observed.Lower, pull.Observed.Upper, pull.Requested.Lower, pull.Requested.Upper)
	}
	if pull.OutsideRequested() {
		fmt.Fprintf(&b, "NOTE: the registry returned notices from %s to %s, outside the requested dates.\n",
			pull.Observed.Lower, pull.Observed.Upper)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}
