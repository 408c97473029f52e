package model

import (
	"log/slog"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Bound is an inclusive range of calendar months
type Bound struct {
	Lower types.MonthKey `json:"lower" firestore:"lower"`
	Upper types.MonthKey `json:"upper" firestore:"upper"`
}

// Validate checks that both ends are valid months and that Lower is not after Upper
func (b Bound) Validate() error {
	if !b.Lower.IsValid() {
		return goerr.New("invalid lower bound month",
			goerr.V("lower", b.Lower),
			goerr.T(ErrTagInvalidMonth))
	}
	if !b.Upper.IsValid() {
		return goerr.New("invalid upper bound month",
			goerr.V("upper", b.Upper),
			goerr.T(ErrTagInvalidMonth))
	}
	if b.Lower.After(b.Upper) {
		return goerr.New("lower bound is after upper bound",
			goerr.V("lower", b.Lower.String()),
			goerr.V("upper", b.Upper.String()),
			goerr.T(ErrTagInvertedRange))
	}
	return nil
}

// Months returns the number of months in the bound
func (b Bound) Months() int {
	return types.MonthsBetween(b.Lower, b.Upper)
}

// Contains reports whether key falls inside the bound
func (b Bound) Contains(key types.MonthKey) bool {
	return !key.Before(b.Lower) && !key.After(b.Upper)
}

// Union returns the smallest bound covering both b and other
func (b Bound) Union(other Bound) Bound {
	result := b
	if other.Lower.Before(result.Lower) {
		result.Lower = other.Lower
	}
	if other.Upper.After(result.Upper) {
		result.Upper = other.Upper
	}
	return result
}

// String returns "YYYY-MM..YYYY-MM"
func (b Bound) String() string {
	return b.Lower.String() + ".." + b.Upper.String()
}

// LogValue returns structured log value
func (b Bound) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("lower", b.Lower.String()),
		slog.String("upper", b.Upper.String()),
	)
}
