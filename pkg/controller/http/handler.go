package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/chart"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type seriesRequest struct {
	From   string   `validate:"required"`
	To     string   `validate:"required"`
	Term   string   `validate:"max=256"`
	Types  []string `validate:"dive,oneof=RULE PRORULE NOTICE PRESDOCU"`
	Format string   `validate:"omitempty,oneof=json csv"`
}

type listRequest struct {
	Limit int `validate:"gte=0,lte=1000"`
}

// handleSeries runs a pull for the query parameters and returns its series
func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	req := seriesRequest{
		From:   params.Get("from"),
		To:     params.Get("to"),
		Term:   params.Get("term"),
		Format: params.Get("format"),
	}
	for _, t := range params["type"] {
		req.Types = append(req.Types, strings.ToUpper(t))
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid series request", goerr.T(model.ErrTagInvalidQuery)))
		return
	}

	query, err := req.query(s.defaults)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pull, err := s.reportUC.Run(ctx, query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if req.Format == string(chart.FormatCSV) {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if err := chart.CSV(w, pull.Series); err != nil {
			ctxlog.From(ctx).Error("Failed to write csv response", "error", err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, chart.NewPullView(pull))
}

func (req seriesRequest) query(defaults *model.QueryProfile) (*model.Query, error) {
	from, err := model.ParseDate(req.From)
	if err != nil {
		return nil, err
	}
	to, err := model.ParseDate(req.To)
	if err != nil {
		return nil, err
	}

	query := &model.Query{
		From:  from,
		To:    to,
		Term:  req.Term,
		Types: defaults.DocumentTypes(),
	}
	if query.Term == "" {
		query.Term = defaults.Term
	}
	if len(req.Types) > 0 {
		query.Types = make([]types.DocumentType, len(req.Types))
		for i, t := range req.Types {
			query.Types[i] = types.DocumentType(t)
		}
	}
	return query, nil
}

// handleListPulls returns stored pulls, newest first
func (s *Server) handleListPulls(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, goerr.Wrap(err, "limit must be a number", goerr.T(model.ErrTagInvalidQuery)))
			return
		}
		req.Limit = limit
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid list request", goerr.T(model.ErrTagInvalidQuery)))
		return
	}

	pulls, err := s.reportUC.List(r.Context(), req.Limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]*chart.PullView, len(pulls))
	for i, p := range pulls {
		views[i] = chart.NewPullView(p)
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"pulls": views})
}

// handleGetPull returns one stored pull
func (s *Server) handleGetPull(w http.ResponseWriter, r *http.Request) {
	id := types.PullID(chi.URLParam(r, "id"))

	pull, err := s.reportUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, chart.NewPullView(pull))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError logs err and reports it to the client with the status its tags map to
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	status := apperr.StatusCode(err)
	message := http.StatusText(status)
	if apperr.IsUserError(err) {
		message = err.Error()
	}
	writeJSON(w, r, status, map[string]string{"error": message})
}
