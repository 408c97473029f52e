package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// MonthKey identifies one calendar month
type MonthKey struct {
	Year  int `json:"year" firestore:"year"`
	Month int `json:"month" firestore:"month"`
}

// NewMonthKey creates a MonthKey, rejecting months outside 1-12 and years outside 0-9999
func NewMonthKey(year, month int) (MonthKey, error) {
	key := MonthKey{Year: year, Month: month}
	if !key.IsValid() {
		return MonthKey{}, goerr.New("invalid month key",
			goerr.V("year", year),
			goerr.V("month", month))
	}
	return key, nil
}

// MonthKeyOf returns the month containing t
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month())}
}

// ParseMonthKey parses a YYYY-MM label
func ParseMonthKey(s string) (MonthKey, error) {
	year, month, ok := strings.Cut(s, "-")
	if !ok || len(year) != 4 || len(month) != 2 {
		return MonthKey{}, goerr.New("month label must be YYYY-MM", goerr.V("label", s))
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return MonthKey{}, goerr.Wrap(err, "invalid year in month label", goerr.V("label", s))
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return MonthKey{}, goerr.Wrap(err, "invalid month in month label", goerr.V("label", s))
	}

	return NewMonthKey(y, m)
}

// IsValid reports whether the month is within 1-12 and the year fits the YYYY label
func (k MonthKey) IsValid() bool {
	return k.Month >= 1 && k.Month <= 12 && k.Year >= 0 && k.Year <= 9999
}

// String returns the canonical YYYY-MM label
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// Compare returns -1, 0 or +1 ordering by year, then month
func (k MonthKey) Compare(other MonthKey) int {
	switch {
	case k.Year < other.Year:
		return -1
	case k.Year > other.Year:
		return 1
	case k.Month < other.Month:
		return -1
	case k.Month > other.Month:
		return 1
	default:
		return 0
	}
}

// Before reports whether k is strictly earlier than other
func (k MonthKey) Before(other MonthKey) bool {
	return k.Compare(other) < 0
}

// After reports whether k is strictly later than other
func (k MonthKey) After(other MonthKey) bool {
	return k.Compare(other) > 0
}

// Next returns the following month, rolling into January of the next year after December
func (k MonthKey) Next() MonthKey {
	if k.Month >= 12 {
		return MonthKey{Year: k.Year + 1, Month: 1}
	}
	return MonthKey{Year: k.Year, Month: k.Month + 1}
}

// ordinal counts months since January of year 0
func (k MonthKey) ordinal() int {
	return k.Year*12 + (k.Month - 1)
}

// MonthsBetween returns the number of calendar months from lower to upper inclusive.
// It returns 0 when upper is earlier than lower.
func MonthsBetween(lower, upper MonthKey) int {
	n := upper.ordinal() - lower.ordinal() + 1
	if n < 0 {
		return 0
	}
	return n
}
