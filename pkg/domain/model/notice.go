package model

import (
	"strconv"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Publication date layouts accepted from the registry feed
const (
	// PublicationDateLayout is the layout of the CSV export, e.g. 09/30/2019
	PublicationDateLayout = "01/02/2006"
	// PublicationDateISOLayout is the layout of the JSON API, e.g. 2019-09-30
	PublicationDateISOLayout = "2006-01-02"
)

// Notice represents one Federal Register document returned by a search
type Notice struct {
	DocumentNumber  string   `json:"document_number" firestore:"document_number"`
	Title           string   `json:"title" firestore:"title"`
	Type            string   `json:"type" firestore:"type"`
	PublicationDate string   `json:"publication_date" firestore:"publication_date"`
	HTMLURL         string   `json:"html_url,omitempty" firestore:"html_url"`
	Agencies        []string `json:"agencies,omitempty" firestore:"agencies"`
}

// Month extracts the month the notice was published in
func (n Notice) Month() (types.MonthKey, error) {
	key, err := ParsePublicationDate(n.PublicationDate)
	if err != nil {
		return types.MonthKey{}, goerr.Wrap(err, "failed to bucket notice",
			goerr.V("document_number", n.DocumentNumber))
	}
	return key, nil
}

// ParsePublicationDate extracts the year and month of a publication date in either
// MM/DD/YYYY or YYYY-MM-DD layout. The day component must be present but is not checked
// against the calendar; only year and month are needed for bucketing.
func ParsePublicationDate(raw string) (types.MonthKey, error) {
	s := strings.TrimSpace(raw)

	var yearPart, monthPart string
	switch {
	case strings.Count(s, "/") == 2:
		parts := strings.Split(s, "/")
		monthPart, yearPart = parts[0], parts[2]
		if parts[1] == "" {
			return types.MonthKey{}, malformedDate(raw, "missing day")
		}
	case strings.Count(s, "-") == 2:
		parts := strings.Split(s, "-")
		yearPart, monthPart = parts[0], parts[1]
		if parts[2] == "" {
			return types.MonthKey{}, malformedDate(raw, "missing day")
		}
	default:
		return types.MonthKey{}, malformedDate(raw, "unrecognized layout")
	}

	if len(yearPart) != 4 {
		return types.MonthKey{}, malformedDate(raw, "year must have four digits")
	}
	if len(monthPart) != 2 {
		return types.MonthKey{}, malformedDate(raw, "month must have two digits")
	}

	if !isDigits(yearPart) {
		return types.MonthKey{}, malformedDate(raw, "year is not a number")
	}
	if !isDigits(monthPart) {
		return types.MonthKey{}, malformedDate(raw, "month is not a number")
	}
	year, _ := strconv.Atoi(yearPart)
	month, _ := strconv.Atoi(monthPart)

	key, err := types.NewMonthKey(year, month)
	if err != nil {
		return types.MonthKey{}, goerr.Wrap(err, "publication date month out of range",
			goerr.V("publication_date", raw),
			goerr.T(ErrTagMalformedRecord))
	}
	return key, nil
}

func malformedDate(raw, reason string) error {
	return goerr.New("malformed publication date",
		goerr.V("publication_date", raw),
		goerr.V("reason", reason),
		goerr.T(ErrTagMalformedRecord))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
