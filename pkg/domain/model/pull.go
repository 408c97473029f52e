package model

import (
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
)

// Pull is the stored result of one registry search aggregated by month
type Pull struct {
	ID          types.PullID      `json:"id" firestore:"id"`
	Query       Query             `json:"query" firestore:"query"`
	URL         string            `json:"url" firestore:"url"`
	Policy      types.BoundPolicy `json:"bound_policy" firestore:"bound_policy"`
	RecordCount int               `json:"record_count" firestore:"record_count"`
	Truncated   bool              `json:"truncated" firestore:"truncated"`
	Requested   Bound             `json:"requested" firestore:"requested"`
	Observed    *Bound            `json:"observed,omitempty" firestore:"observed"`
	Series      DenseSeries       `json:"series" firestore:"series"`
	CreatedAt   time.Time         `json:"created_at" firestore:"created_at"`
}

// RangeShrunk reports whether the data actually returned covers fewer months than were
// requested. This happens when the first or last requested months had no notices, or when
// the registry truncated the result.
func (p *Pull) RangeShrunk() bool {
	if p.Observed == nil {
		return true
	}
	return p.Observed.Lower.After(p.Requested.Lower) || p.Observed.Upper.Before(p.Requested.Upper)
}

// OutsideRequested reports whether any returned notice falls outside the requested months
func (p *Pull) OutsideRequested() bool {
	if p.Observed == nil {
		return false
	}
	return p.Observed.Lower.Before(p.Requested.Lower) || p.Observed.Upper.After(p.Requested.Upper)
}
