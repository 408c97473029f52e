package model_test

import (
	"testing"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func date(year int, m time.Month, day int) time.Time {
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}

func validQuery() *model.Query {
	return &model.Query{
		From:  date(2017, time.January, 1),
		To:    date(2019, time.December, 31),
		Term:  model.DefaultSearchTerm,
		Types: types.DefaultDocumentTypes(),
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := model.ParseDate("02/29/2020")
		gt.NoError(t, err).Required()
		gt.Equal(t, d, date(2020, time.February, 29))
		gt.Equal(t, model.FormatDate(d), "02/29/2020")
	})

	for _, s := range []string{"02/30/2020", "13/01/2020", "2020-01-01", "1/1/2020", ""} {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := model.ParseDate(s)
			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, model.ErrTagInvalidQuery)).True()
		})
	}
}

func TestParseUserDate(t *testing.T) {
	for _, s := range []string{"01/05/2019", "1/5/2019", " 01/5/2019 "} {
		t.Run(s, func(t *testing.T) {
			d, err := model.ParseUserDate(s)
			gt.NoError(t, err).Required()
			gt.Equal(t, d, date(2019, time.January, 5))
		})
	}

	for _, s := range []string{"2019-01-05", "02/30/2019", "1/5/19", "", "a/b/2019", "13/1/2019"} {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := model.ParseUserDate(s)
			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, model.ErrTagInvalidQuery)).True()
		})
	}
}

func TestQueryValidate(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		gt.NoError(t, validQuery().Validate())
	})

	t.Run("same day range is valid", func(t *testing.T) {
		q := validQuery()
		q.To = q.From
		gt.NoError(t, q.Validate())
	})

	t.Run("inverted range", func(t *testing.T) {
		q := validQuery()
		q.From, q.To = q.To, q.From
		err := q.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvertedRange)).True()
	})

	t.Run("missing dates", func(t *testing.T) {
		q := validQuery()
		q.From = time.Time{}
		err := q.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidQuery)).True()
	})

	t.Run("empty term", func(t *testing.T) {
		q := validQuery()
		q.Term = "  "
		gt.B(t, goerr.HasTag(q.Validate(), model.ErrTagInvalidQuery)).True()
	})

	t.Run("no types", func(t *testing.T) {
		q := validQuery()
		q.Types = nil
		gt.B(t, goerr.HasTag(q.Validate(), model.ErrTagInvalidQuery)).True()
	})

	t.Run("unknown type", func(t *testing.T) {
		q := validQuery()
		q.Types = []types.DocumentType{"MEMO"}
		gt.B(t, goerr.HasTag(q.Validate(), model.ErrTagInvalidQuery)).True()
	})
}

func TestQueryRequestedBound(t *testing.T) {
	b := validQuery().RequestedBound()
	gt.Equal(t, b.Lower, types.MonthKey{Year: 2017, Month: 1})
	gt.Equal(t, b.Upper, types.MonthKey{Year: 2019, Month: 12})
	gt.Equal(t, b.Months(), 36)
}

func TestPullRangeShrunk(t *testing.T) {
	requested := model.Bound{Lower: month(2019, 1), Upper: month(2019, 12)}

	t.Run("observed equals requested", func(t *testing.T) {
		observed := requested
		p := &model.Pull{Requested: requested, Observed: &observed}
		gt.False(t, p.RangeShrunk())
		gt.False(t, p.OutsideRequested())
	})

	t.Run("observed starts late", func(t *testing.T) {
		observed := model.Bound{Lower: month(2019, 2), Upper: month(2019, 12)}
		p := &model.Pull{Requested: requested, Observed: &observed}
		gt.True(t, p.RangeShrunk())
	})

	t.Run("observed ends early", func(t *testing.T) {
		observed := model.Bound{Lower: month(2019, 1), Upper: month(2019, 6)}
		p := &model.Pull{Requested: requested, Observed: &observed}
		gt.True(t, p.RangeShrunk())
	})

	t.Run("no data", func(t *testing.T) {
		p := &model.Pull{Requested: requested}
		gt.True(t, p.RangeShrunk())
		gt.False(t, p.OutsideRequested())
	})

	t.Run("data outside requested", func(t *testing.T) {
		observed := model.Bound{Lower: month(2018, 12), Upper: month(2019, 12)}
		p := &model.Pull{Requested: requested, Observed: &observed}
		gt.True(t, p.OutsideRequested())
	})
}
