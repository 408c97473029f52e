package tally_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/tally"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func month(year, m int) types.MonthKey {
	return types.MonthKey{Year: year, Month: m}
}

func notices(dates ...string) []model.Notice {
	result := make([]model.Notice, len(dates))
	for i, d := range dates {
		result[i] = model.Notice{
			DocumentNumber:  fmt.Sprintf("doc-%d", i),
			PublicationDate: d,
		}
	}
	return result
}

func labels(series model.DenseSeries) []string {
	result := make([]string, len(series))
	for i, m := range series {
		result[i] = fmt.Sprintf("%s=%d", m.Label(), m.Count)
	}
	return result
}

func TestBucketize(t *testing.T) {
	t.Run("counts notices per month", func(t *testing.T) {
		counts, err := tally.Bucketize(notices("01/05/2019", "01/20/2019", "03/01/2019"))
		gt.NoError(t, err).Required()
		gt.Equal(t, counts, model.SparseCounts{
			month(2019, 1): 2,
			month(2019, 3): 1,
		})
		gt.Equal(t, counts.Total(), 3)
	})

	t.Run("empty input gives empty counts", func(t *testing.T) {
		counts, err := tally.Bucketize(nil)
		gt.NoError(t, err)
		gt.Equal(t, len(counts), 0)
	})

	t.Run("order does not matter", func(t *testing.T) {
		dates := []string{"12/15/2018", "02/10/2019", "02/11/2019", "2019-02-28", "06/30/2017"}
		want, err := tally.Bucketize(notices(dates...))
		gt.NoError(t, err).Required()

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			shuffled := append([]string{}, dates...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got, err := tally.Bucketize(notices(shuffled...))
			gt.NoError(t, err)
			gt.Equal(t, got, want)
		}
	})

	t.Run("malformed record fails the whole call", func(t *testing.T) {
		counts, err := tally.Bucketize(notices("01/05/2019", "2019/01/05", "03/01/2019"))
		gt.Error(t, err)
		gt.True(t, counts == nil)
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedRecord)).True()

		values := goerr.Values(err)
		gt.V(t, values["index"]).Equal(1)
		gt.V(t, values["document_number"]).Equal("doc-1")
	})
}

func TestObservedBound(t *testing.T) {
	t.Run("earliest and latest month", func(t *testing.T) {
		bound, err := tally.ObservedBound(model.SparseCounts{
			month(2019, 2):  1,
			month(2018, 12): 3,
			month(2019, 1):  1,
			month(2018, 11): 2,
		})
		gt.NoError(t, err)
		gt.Equal(t, bound, model.Bound{Lower: month(2018, 11), Upper: month(2019, 2)})
	})

	t.Run("earliest month uses the earliest year, not the smallest month number", func(t *testing.T) {
		bound, err := tally.ObservedBound(model.SparseCounts{
			month(2018, 12): 1,
			month(2019, 1):  1,
		})
		gt.NoError(t, err)
		gt.Equal(t, bound.Lower, month(2018, 12))
		gt.Equal(t, bound.Upper, month(2019, 1))
	})

	t.Run("single month", func(t *testing.T) {
		bound, err := tally.ObservedBound(model.SparseCounts{month(2019, 5): 7})
		gt.NoError(t, err)
		gt.Equal(t, bound, model.Bound{Lower: month(2019, 5), Upper: month(2019, 5)})
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := tally.ObservedBound(model.SparseCounts{})
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagEmptyInput)).True()
	})
}

func TestExpand(t *testing.T) {
	t.Run("fills missing months with zero", func(t *testing.T) {
		counts, err := tally.Bucketize(notices("01/05/2019", "01/20/2019", "03/01/2019"))
		gt.NoError(t, err).Required()

		series, err := tally.Expand(counts, month(2019, 1), month(2019, 3))
		gt.NoError(t, err).Required()
		gt.Equal(t, labels(series), []string{"2019-01=2", "2019-02=0", "2019-03=1"})
	})

	t.Run("rolls over the year boundary", func(t *testing.T) {
		counts, err := tally.Bucketize(notices("12/15/2018", "02/10/2019"))
		gt.NoError(t, err).Required()

		series, err := tally.Expand(counts, month(2018, 12), month(2019, 2))
		gt.NoError(t, err).Required()
		gt.Equal(t, labels(series), []string{"2018-12=1", "2019-01=0", "2019-02=1"})
	})

	t.Run("single month bound", func(t *testing.T) {
		series, err := tally.Expand(model.SparseCounts{month(2019, 5): 4}, month(2019, 5), month(2019, 5))
		gt.NoError(t, err).Required()
		gt.Equal(t, labels(series), []string{"2019-05=4"})
	})

	t.Run("bound with no data is all zero", func(t *testing.T) {
		series, err := tally.Expand(model.SparseCounts{}, month(2019, 11), month(2020, 1))
		gt.NoError(t, err).Required()
		gt.Equal(t, labels(series), []string{"2019-11=0", "2019-12=0", "2020-01=0"})
	})

	t.Run("inverted bound", func(t *testing.T) {
		series, err := tally.Expand(model.SparseCounts{month(2019, 2): 1}, month(2019, 3), month(2019, 1))
		gt.Error(t, err)
		gt.True(t, series == nil)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvertedRange)).True()
	})

	t.Run("invalid month in bound", func(t *testing.T) {
		_, err := tally.Expand(model.SparseCounts{}, month(2019, 0), month(2019, 3))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidMonth)).True()
	})
}

func TestExpandProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		dates := make([]string, rng.Intn(200)+1)
		for j := range dates {
			dates[j] = fmt.Sprintf("%02d/%02d/%04d", rng.Intn(12)+1, rng.Intn(28)+1, 2015+rng.Intn(6))
		}

		counts, err := tally.Bucketize(notices(dates...))
		gt.NoError(t, err).Required()
		bound, err := tally.ObservedBound(counts)
		gt.NoError(t, err).Required()
		series, err := tally.Expand(counts, bound.Lower, bound.Upper)
		gt.NoError(t, err).Required()

		// completeness
		gt.Equal(t, len(series), types.MonthsBetween(bound.Lower, bound.Upper))
		// conservation
		gt.Equal(t, series.Total(), counts.Total())
		gt.Equal(t, series.Total(), len(dates))

		for j, entry := range series {
			// month range
			gt.True(t, entry.Month.Month >= 1 && entry.Month.Month <= 12)
			// monotonic ordering with no gaps
			if j > 0 {
				gt.Equal(t, series[j-1].Month.Next(), entry.Month)
			}
			// zero fill
			if _, ok := counts[entry.Month]; !ok {
				gt.Equal(t, entry.Count, 0)
			} else {
				gt.Equal(t, entry.Count, counts[entry.Month])
			}
		}

		// idempotence
		again, err := tally.Bucketize(notices(dates...))
		gt.NoError(t, err).Required()
		series2, err := tally.Expand(again, bound.Lower, bound.Upper)
		gt.NoError(t, err).Required()
		gt.Equal(t, series2, series)
	}
}
