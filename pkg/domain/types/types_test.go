package types_test

import (
	"testing"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestMonthKeyString(t *testing.T) {
	tests := []struct {
		key      types.MonthKey
		expected string
	}{
		{types.MonthKey{Year: 2019, Month: 1}, "2019-01"},
		{types.MonthKey{Year: 2019, Month: 12}, "2019-12"},
		{types.MonthKey{Year: 999, Month: 7}, "0999-07"},
		{types.MonthKey{Year: 5, Month: 10}, "0005-10"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			gt.Equal(t, tt.key.String(), tt.expected)
		})
	}
}

func TestNewMonthKey(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		valid bool
	}{
		{"January", 2019, 1, true},
		{"December", 2019, 12, true},
		{"Month zero", 2019, 0, false},
		{"Month thirteen", 2019, 13, false},
		{"Negative year", -1, 5, false},
		{"Five digit year", 10000, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := types.NewMonthKey(tt.year, tt.month)
			if tt.valid {
				gt.NoError(t, err)
				gt.Equal(t, key, types.MonthKey{Year: tt.year, Month: tt.month})
			} else {
				gt.Error(t, err)
			}
		})
	}
}

func TestParseMonthKey(t *testing.T) {
	t.Run("round trips canonical label", func(t *testing.T) {
		key, err := types.ParseMonthKey("2018-12")
		gt.NoError(t, err).Required()
		gt.Equal(t, key, types.MonthKey{Year: 2018, Month: 12})
		gt.Equal(t, key.String(), "2018-12")
	})

	for _, label := range []string{"2018-13", "2018-1", "18-01", "2018/01", "abcd-01", ""} {
		t.Run("rejects "+label, func(t *testing.T) {
			_, err := types.ParseMonthKey(label)
			gt.Error(t, err)
		})
	}
}

func TestMonthKeyOrdering(t *testing.T) {
	nov := types.MonthKey{Year: 2018, Month: 11}
	dec := types.MonthKey{Year: 2018, Month: 12}
	jan := types.MonthKey{Year: 2019, Month: 1}

	gt.Equal(t, nov.Compare(dec), -1)
	gt.Equal(t, jan.Compare(dec), 1)
	gt.Equal(t, jan.Compare(types.MonthKey{Year: 2019, Month: 1}), 0)
	gt.True(t, dec.Before(jan))
	gt.True(t, jan.After(nov))
	gt.False(t, jan.Before(jan))
}

func TestMonthKeyNext(t *testing.T) {
	gt.Equal(t, types.MonthKey{Year: 2019, Month: 3}.Next(), types.MonthKey{Year: 2019, Month: 4})
	gt.Equal(t, types.MonthKey{Year: 2018, Month: 12}.Next(), types.MonthKey{Year: 2019, Month: 1})
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		lower    types.MonthKey
		upper    types.MonthKey
		expected int
	}{
		{"single month", types.MonthKey{Year: 2019, Month: 5}, types.MonthKey{Year: 2019, Month: 5}, 1},
		{"same year", types.MonthKey{Year: 2019, Month: 1}, types.MonthKey{Year: 2019, Month: 3}, 3},
		{"across year boundary", types.MonthKey{Year: 2018, Month: 11}, types.MonthKey{Year: 2019, Month: 2}, 4},
		{"three full years", types.MonthKey{Year: 2017, Month: 1}, types.MonthKey{Year: 2019, Month: 12}, 36},
		{"inverted", types.MonthKey{Year: 2019, Month: 3}, types.MonthKey{Year: 2019, Month: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, types.MonthsBetween(tt.lower, tt.upper), tt.expected)
		})
	}
}

func TestMonthKeyOf(t *testing.T) {
	ts := time.Date(2020, time.April, 29, 18, 5, 21, 0, time.UTC)
	gt.Equal(t, types.MonthKeyOf(ts), types.MonthKey{Year: 2020, Month: 4})
}

func TestDocumentTypeValidation(t *testing.T) {
	tests := []struct {
		name     string
		docType  types.DocumentType
		expected bool
	}{
		{"Valid RULE", types.DocumentTypeRule, true},
		{"Valid PRORULE", types.DocumentTypeProposedRule, true},
		{"Valid NOTICE", types.DocumentTypeNotice, true},
		{"Valid PRESDOCU", types.DocumentTypePresidential, true},
		{"Invalid lowercase", types.DocumentType("rule"), false},
		{"Invalid empty", types.DocumentType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.docType.IsValid()
			if result != tt.expected {
				t.Errorf("DocumentType(%q).IsValid() = %v, want %v", tt.docType, result, tt.expected)
			}
		})
	}
}

func TestNewPullID(t *testing.T) {
	a, err := types.NewPullID()
	gt.NoError(t, err).Required()
	b, err := types.NewPullID()
	gt.NoError(t, err).Required()
	gt.True(t, a != b)
	gt.Equal(t, len(a.String()), 36)
}
