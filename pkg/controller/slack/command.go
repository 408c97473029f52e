package slack

import (
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const commandUsage = "Usage: `/frtally <from MM/DD/YYYY> <to MM/DD/YYYY> [search term]`"

// parseCommandText reads "<from> <to> [term...]". The term defaults to the profile's.
func parseCommandText(text string, defaults *model.QueryProfile) (*model.Query, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, goerr.New("from and to dates are required",
			goerr.V("text", text),
			goerr.T(model.ErrTagInvalidQuery))
	}

	from, err := model.ParseUserDate(fields[0])
	if err != nil {
		return nil, err
	}
	to, err := model.ParseUserDate(fields[1])
	if err != nil {
		return nil, err
	}

	term := strings.Trim(strings.Join(fields[2:], " "), `"“”`)
	if term == "" {
		term = defaults.Term
	}

	query := &model.Query{
		From:  from,
		To:    to,
		Term:  term,
		Types: defaults.DocumentTypes(),
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}
