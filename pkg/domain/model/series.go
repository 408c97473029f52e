package model

import (
	"encoding/json"
	"sort"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SparseCounts maps months that have at least one notice to their notice count
type SparseCounts map[types.MonthKey]int

// Get returns the count for key, or 0 when the month has no notices
func (c SparseCounts) Get(key types.MonthKey) int {
	return c[key]
}

// Total returns the sum of all counts
func (c SparseCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Months returns the keys in chronological order
func (c SparseCounts) Months() []types.MonthKey {
	keys := make([]types.MonthKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Before(keys[j])
	})
	return keys
}

// MonthCount is one entry of a dense series
type MonthCount struct {
	Month types.MonthKey `json:"-" firestore:"month"`
	Count int            `json:"count" firestore:"count"`
}

// Label returns the YYYY-MM label of the month
func (m MonthCount) Label() string {
	return m.Month.String()
}

type monthCountJSON struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MarshalJSON renders the month as its YYYY-MM label
func (m MonthCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(monthCountJSON{Month: m.Label(), Count: m.Count})
}

// UnmarshalJSON parses the YYYY-MM label form written by MarshalJSON
func (m *MonthCount) UnmarshalJSON(data []byte) error {
	var v monthCountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return goerr.Wrap(err, "failed to decode month count")
	}
	key, err := types.ParseMonthKey(v.Month)
	if err != nil {
		return goerr.Wrap(err, "invalid month in month count")
	}
	m.Month = key
	m.Count = v.Count
	return nil
}

// DenseSeries is a gap-free, chronologically ordered sequence of monthly counts
type DenseSeries []MonthCount

// Total returns the sum of all counts
func (s DenseSeries) Total() int {
	total := 0
	for _, m := range s {
		total += m.Count
	}
	return total
}

// Max returns the largest count, or 0 for an empty series
func (s DenseSeries) Max() int {
	max := 0
	for _, m := range s {
		if m.Count > max {
			max = m.Count
		}
	}
	return max
}

// Bound returns the first and last month of the series
func (s DenseSeries) Bound() (Bound, bool) {
	if len(s) == 0 {
		return Bound{}, false
	}
	return Bound{Lower: s[0].Month, Upper: s[len(s)-1].Month}, true
}
