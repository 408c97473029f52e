package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// IsUserError reports whether err was caused by the caller's input rather than a failure of
// this program or the registry
func IsUserError(err error) bool {
	return goerr.HasTag(err, model.ErrTagInvalidQuery) ||
		goerr.HasTag(err, model.ErrTagInvertedRange) ||
		goerr.HasTag(err, model.ErrTagEmptyInput) ||
		goerr.HasTag(err, model.ErrTagInvalidMonth) ||
		errors.Is(err, model.ErrPullNotFound)
}

// StatusCode maps an error to the HTTP status reported to API clients
func StatusCode(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidQuery),
		goerr.HasTag(err, model.ErrTagInvertedRange),
		goerr.HasTag(err, model.ErrTagInvalidMonth):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagEmptyInput),
		errors.Is(err, model.ErrPullNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagRegistry),
		goerr.HasTag(err, model.ErrTagMalformedRecord):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Handle logs err through the context logger. Errors caused by user input are warnings.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if IsUserError(err) {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
