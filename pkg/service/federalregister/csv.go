package federalregister

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// CSV column names in the registry export
const (
	columnPublicationDate = "publication_date"
	columnDocumentNumber  = "document_number"
	columnTitle           = "title"
	columnType            = "type"
	columnHTMLURL         = "html_url"
	columnAgencyNames     = "agency_names"
)

// registry export joins multiple agencies with this separator
const agencySeparator = "; "

// ParseCSV decodes a registry CSV export. Columns are located by header name; only
// publication_date is required. An export with a header and no rows yields no notices.
func ParseCSV(r io.Reader) ([]model.Notice, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read csv header", goerr.T(model.ErrTagRegistry))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		// the first header cell may carry a UTF-8 byte order mark
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[columnPublicationDate]; !ok {
		return nil, goerr.New("csv has no publication_date column",
			goerr.V("header", header),
			goerr.T(model.ErrTagRegistry))
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var notices []model.Notice
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read csv row",
				goerr.V("line", line),
				goerr.T(model.ErrTagRegistry))
		}

		notice := model.Notice{
			DocumentNumber:  field(row, columnDocumentNumber),
			Title:           field(row, columnTitle),
			Type:            field(row, columnType),
			PublicationDate: field(row, columnPublicationDate),
			HTMLURL:         field(row, columnHTMLURL),
		}
		if agencies := field(row, columnAgencyNames); agencies != "" {
			for _, a := range strings.Split(agencies, agencySeparator) {
				if a = strings.TrimSpace(a); a != "" {
					notice.Agencies = append(notice.Agencies, a)
				}
			}
		}
		notices = append(notices, notice)
	}

	return notices, nil
}
