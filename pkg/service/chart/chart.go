// Package chart renders a pull's monthly series for people and for other programs.
package chart

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Title heads every bar chart
const Title = "Federal Register notices, by year and month"

const (
	// DefaultWidth is used when the output is not a terminal
	DefaultWidth = 80
	minBarWidth  = 10
	barRune      = "█"
	// display columns of "YYYY-MM │"
	labelColumns = 9
)

// Format selects how a pull is rendered
type Format string

const (
	FormatChart Format = "chart"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat parses an --output value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatChart, FormatTable, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatChart, nil
	default:
		return "", goerr.New("invalid output format, must be one of chart, table, json, csv",
			goerr.V("format", s))
	}
}

// TerminalWidth returns the column count of w when it is a terminal, or DefaultWidth
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

// Renderer writes pulls in the selected format
type Renderer struct {
	width   int
	printer *message.Printer
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWidth fixes the chart width in columns
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// New creates a Renderer. Without WithWidth the chart is fitted to the output at render time.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes pull to w in format
func (r *Renderer) Render(w io.Writer, pull *model.Pull, format Format) error {
	switch format {
	case FormatChart, "":
		return r.Chart(w, pull.Series)
	case FormatTable:
		return r.Table(w, pull.Series)
	case FormatJSON:
		return JSON(w, pull)
	case FormatCSV:
		return CSV(w, pull.Series)
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}
}

// Chart draws a horizontal bar per month, scaled so the longest bar fills the width
func (r *Renderer) Chart(w io.Writer, series model.DenseSeries) error {
	width := r.width
	if width <= 0 {
		width = TerminalWidth(w)
	}

	var b strings.Builder
	b.WriteString(Title + "\n\n")

	maxCount := series.Max()
	countWidth := len(r.printer.Sprintf("%d", maxCount))
	barWidth := width - labelColumns - 1 - countWidth
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	for _, entry := range series {
		bar := 0
		if maxCount > 0 {
			bar = (entry.Count*barWidth + maxCount/2) / maxCount
			if bar == 0 && entry.Count > 0 {
				bar = 1
			}
		}
		fmt.Fprintf(&b, "%s │%s %s\n", entry.Label(), strings.Repeat(barRune, bar), r.printer.Sprintf("%d", entry.Count))
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return goerr.Wrap(err, "failed to write chart")
	}
	return nil
}

// Table writes one row per month followed by the total
func (r *Renderer) Table(w io.Writer, series model.DenseSeries) error {
	var b strings.Builder
	countWidth := len("Notices")
	if n := len(r.printer.Sprintf("%d", series.Total())); n > countWidth {
		countWidth = n
	}

	fmt.Fprintf(&b, "%-7s  %*s\n", "Month", countWidth, "Notices")
	for _, entry := range series {
		fmt.Fprintf(&b, "%-7s  %*s\n", entry.Label(), countWidth, r.printer.Sprintf("%d", entry.Count))
	}
	fmt.Fprintf(&b, "%-7s  %*s\n", "Total", countWidth, r.printer.Sprintf("%d", series.Total()))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write table")
	}
	return nil
}

// PullView is the JSON form of a pull, with its discrepancy flags spelled out
type PullView struct {
	*model.Pull
	RangeShrunk      bool `json:"range_shrunk"`
	OutsideRequested bool `json:"outside_requested"`
	Total            int  `json:"total"`
}

// NewPullView creates the JSON view of pull
func NewPullView(pull *model.Pull) *PullView {
	return &PullView{
		Pull:             pull,
		RangeShrunk:      pull.RangeShrunk(),
		OutsideRequested: pull.OutsideRequested(),
		Total:            pull.Series.Total(),
	}
}

// JSON writes the pull as indented JSON
func JSON(w io.Writer, pull *model.Pull) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewPullView(pull)); err != nil {
		return goerr.Wrap(err, "failed to write json")
	}
	return nil
}

// CSV writes a month,count row per month
func CSV(w io.Writer, series model.DenseSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "count"}); err != nil {
		return goerr.Wrap(err, "failed to write csv header")
	}
	for _, entry := range series {
		if err := cw.Write([]string{entry.Label(), strconv.Itoa(entry.Count)}); err != nil {
			return goerr.Wrap(err, "failed to write csv row", goerr.V("month", entry.Label()))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush csv")
	}
	return nil
}
