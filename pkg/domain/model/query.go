package model

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultSearchTerm is the registry full-text term searched when none is configured
const DefaultSearchTerm = "Federal Acquisition Regulation"

// Query describes one registry search over a publication date range
type Query struct {
	From  time.Time            `json:"from" firestore:"from"`
	To    time.Time            `json:"to" firestore:"to"`
	Term  string               `json:"term" firestore:"term"`
	Types []types.DocumentType `json:"types" firestore:"types"`
}

// ParseDate parses a calendar date in MM/DD/YYYY form, rejecting dates that do not exist
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(PublicationDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "date must be a real calendar date in MM/DD/YYYY form",
			goerr.V("date", s),
			goerr.T(ErrTagInvalidQuery))
	}
	return d, nil
}

// ParseUserDate is ParseDate for typed input: it also accepts M/D/YYYY
func ParseUserDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) == 3 && len(parts[2]) == 4 {
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		if errM == nil && errD == nil {
			s = fmt.Sprintf("%02d/%02d/%s", month, day, parts[2])
		}
	}
	return ParseDate(s)
}

// FormatDate renders t as MM/DD/YYYY
func FormatDate(t time.Time) string {
	return t.Format(PublicationDateLayout)
}

// Validate validates the query
func (q *Query) Validate() error {
	if q.From.IsZero() || q.To.IsZero() {
		return goerr.New("both from and to dates are required", goerr.T(ErrTagInvalidQuery))
	}
	if q.From.After(q.To) {
		return goerr.New("from date is after to date",
			goerr.V("from", FormatDate(q.From)),
			goerr.V("to", FormatDate(q.To)),
			goerr.T(ErrTagInvertedRange))
	}
	if strings.TrimSpace(q.Term) == "" {
		return goerr.New("search term is required", goerr.T(ErrTagInvalidQuery))
	}
	if len(q.Types) == 0 {
		return goerr.New("at least one document type is required", goerr.T(ErrTagInvalidQuery))
	}
	for _, t := range q.Types {
		if !t.IsValid() {
			return goerr.New("invalid document type",
				goerr.V("type", t),
				goerr.T(ErrTagInvalidQuery))
		}
	}
	return nil
}

// RequestedBound returns the months spanned by the requested date range
func (q *Query) RequestedBound() Bound {
	return Bound{
		Lower: types.MonthKeyOf(q.From),
		Upper: types.MonthKeyOf(q.To),
	}
}

// LogValue returns structured log value
func (q Query) LogValue() slog.Value {
	typeNames := make([]string, len(q.Types))
	for i, t := range q.Types {
		typeNames[i] = t.String()
	}
	return slog.GroupValue(
		slog.String("from", FormatDate(q.From)),
		slog.String("to", FormatDate(q.To)),
		slog.String("term", q.Term),
		slog.Any("types", typeNames),
	)
}

// SearchResult is what the registry returned for a query
type SearchResult struct {
	URL       string   `json:"url"`
	Notices   []Notice `json:"notices"`
	Truncated bool     `json:"truncated"`
}
