// Package tally aggregates dated notices into monthly counts.
//
// Bucketize folds notices into sparse per-month counts, and Expand unfolds sparse counts
// into a dense series covering every month of a bound, filling months without notices
// with zero. Both are pure and keep no state between calls.
package tally

import (
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Bucketize counts notices per publication month. The first notice whose publication date
// cannot be parsed aborts the whole call.
func Bucketize(notices []model.Notice) (model.SparseCounts, error) {
	counts := make(model.SparseCounts)
	for i, n := range notices {
		key, err := n.Month()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to bucketize notices",
				goerr.V("index", i),
				goerr.T(model.ErrTagMalformedRecord))
		}
		counts[key]++
	}
	return counts, nil
}

// ObservedBound returns the earliest and latest month present in counts
func ObservedBound(counts model.SparseCounts) (model.Bound, error) {
	if len(counts) == 0 {
		return model.Bound{}, goerr.New("no notices to derive a month range from",
			goerr.T(model.ErrTagEmptyInput))
	}

	var bound model.Bound
	first := true
	for key := range counts {
		if first {
			bound = model.Bound{Lower: key, Upper: key}
			first = false
			continue
		}
		if key.Before(bound.Lower) {
			bound.Lower = key
		}
		if key.After(bound.Upper) {
			bound.Upper = key
		}
	}
	return bound, nil
}

// Expand produces one entry per month from lower to upper inclusive, taking the count from
// counts or 0 when the month has no entry.
func Expand(counts model.SparseCounts, lower, upper types.MonthKey) (model.DenseSeries, error) {
	bound := model.Bound{Lower: lower, Upper: upper}
	if err := bound.Validate(); err != nil {
		return nil, goerr.Wrap(err, "cannot expand counts over bound")
	}

	series := make(model.DenseSeries, 0, bound.Months())
	for key := lower; !key.After(upper); key = key.Next() {
		series = append(series, model.MonthCount{Month: key, Count: counts.Get(key)})
	}
	return series, nil
}
