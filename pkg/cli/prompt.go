package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const (
	fromPrompt   = "Extract data from date (MM/DD/YYYY): "
	toPrompt     = "Extract data until date (MM/DD/YYYY): "
	retryMessage = "Sorry, that date format wasn't clear. Can you please enter it again?"
)

// prompter asks for dates on out and reads answers from in, one per line
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// Date asks with label until the answer is a valid date. Running out of input is an error.
func (p *prompter) Date(label string) (time.Time, error) {
	for {
		if _, err := io.WriteString(p.out, label); err != nil {
			return time.Time{}, goerr.Wrap(err, "failed to write prompt")
		}

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return time.Time{}, goerr.Wrap(err, "failed to read date")
			}
			fmt.Fprintln(p.out)
			return time.Time{}, goerr.New("no date entered", goerr.T(model.ErrTagInvalidQuery))
		}

		d, err := model.ParseUserDate(p.scanner.Text())
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, retryMessage)
	}
}

// dateRange returns the dates given as flags, prompting for any that are missing
func dateRange(from, to string, p *prompter) (time.Time, time.Time, error) {
	read := func(value, label string) (time.Time, error) {
		if value != "" {
			return model.ParseUserDate(value)
		}
		return p.Date(label)
	}

	fromDate, err := read(from, fromPrompt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toDate, err := read(to, toPrompt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return fromDate, toDate, nil
}
