package usecase

import (
	"context"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/tally"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/async"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultListLimit is used when List is called without a positive limit
const DefaultListLimit = 20

// ReportConfig holds configuration for Report use case
type ReportConfig struct {
	policy   types.BoundPolicy
	notifier interfaces.Notifier
	tasks    *async.Group
	metrics  *metrics.Metrics
	now      func() time.Time
}

// ReportOption is a functional option for configuring Report
type ReportOption func(*ReportConfig)

// WithBoundPolicy selects how the month bound of a pull is chosen
func WithBoundPolicy(policy types.BoundPolicy) ReportOption {
	return func(c *ReportConfig) {
		c.policy = policy
	}
}

// WithNotifier announces every stored pull through n
func WithNotifier(n interfaces.Notifier) ReportOption {
	return func(c *ReportConfig) {
		c.notifier = n
	}
}

// WithAsyncNotify sends notifications in the background on tasks instead of before Run returns
func WithAsyncNotify(tasks *async.Group) ReportOption {
	return func(c *ReportConfig) {
		c.tasks = tasks
	}
}

// WithMetrics records the outcome and duration of every pull
func WithMetrics(m *metrics.Metrics) ReportOption {
	return func(c *ReportConfig) {
		c.metrics = m
	}
}

// WithClock replaces the clock used to stamp pulls
func WithClock(now func() time.Time) ReportOption {
	return func(c *ReportConfig) {
		c.now = now
	}
}

// Report implements interfaces.Report
type Report struct {
	registry interfaces.Registry
	repo     interfaces.Repository
	config   ReportConfig
}

// NewReport creates a new Report use case
func NewReport(registry interfaces.Registry, repo interfaces.Repository, opts ...ReportOption) *Report {
	config := ReportConfig{
		policy: types.BoundObserved,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Report{
		registry: registry,
		repo:     repo,
		config:   config,
	}
}

// Run searches the registry, folds the notices into a dense monthly series and stores the result
func (r *Report) Run(ctx context.Context, query *model.Query) (*model.Pull, error) {
	start := time.Now()
	pull, err := r.run(ctx, query)
	if pull != nil {
		r.config.metrics.ObservePull(time.Since(start), pull.RecordCount, pull.Truncated, nil)
	} else {
		r.config.metrics.ObservePull(time.Since(start), 0, false, err)
	}
	return pull, err
}

func (r *Report) run(ctx context.Context, query *model.Query) (*model.Pull, error) {
	logger := ctxlog.From(ctx)

	if !r.config.policy.IsValid() {
		return nil, goerr.New("invalid bound policy",
			goerr.V("policy", r.config.policy),
			goerr.T(model.ErrTagInvalidQuery))
	}
	if err := query.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid query")
	}

	result, err := r.registry.Search(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search registry")
	}

	counts, err := tally.Bucketize(result.Notices)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate notices", goerr.V("url", result.URL))
	}

	requested := query.RequestedBound()
	var observed *model.Bound
	if b, err := tally.ObservedBound(counts); err == nil {
		observed = &b
	} else if r.config.policy == types.BoundObserved {
		return nil, goerr.Wrap(err, "registry returned no notices for the query",
			goerr.V("url", result.URL),
			goerr.V("query", query))
	}

	bound := requested
	switch {
	case r.config.policy == types.BoundObserved:
		bound = *observed
	case observed != nil:
		bound = requested.Union(*observed)
	}

	series, err := tally.Expand(counts, bound.Lower, bound.Upper)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to expand monthly series", goerr.V("bound", bound))
	}

	id, err := types.NewPullID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate pull ID")
	}

	pull := &model.Pull{
		ID:          id,
		Query:       *query,
		URL:         result.URL,
		Policy:      r.config.policy,
		RecordCount: len(result.Notices),
		Truncated:   result.Truncated,
		Requested:   requested,
		Observed:    observed,
		Series:      series,
		CreatedAt:   r.config.now().UTC(),
	}

	if pull.Truncated {
		logger.Warn("Registry result reached its record cap, later notices are missing",
			"records", pull.RecordCount,
			"url", pull.URL,
		)
	}
	if pull.RangeShrunk() {
		logger.Warn("Notices found cover fewer months than requested",
			"requested", requested,
			"observed", describeBound(observed),
		)
	}
	if pull.OutsideRequested() {
		logger.Warn("Registry returned notices outside the requested dates",
			"requested", requested,
			"observed", describeBound(observed),
		)
	}

	if err := r.repo.PutPull(ctx, pull); err != nil {
		return nil, goerr.Wrap(err, "failed to save pull", goerr.V("id", pull.ID))
	}

	logger.Info("Pull completed",
		"id", pull.ID,
		"records", pull.RecordCount,
		"bound", bound,
		"policy", pull.Policy,
	)

	r.notify(ctx, pull)

	return pull, nil
}

func describeBound(b *model.Bound) string {
	if b == nil {
		return "none"
	}
	return b.String()
}

func (r *Report) notify(ctx context.Context, pull *model.Pull) {
	if r.config.notifier == nil {
		return
	}

	if r.config.tasks != nil {
		r.config.tasks.Dispatch(ctx, "notify pull", func(ctx context.Context) error {
			return r.config.notifier.NotifyPull(ctx, pull)
		})
		return
	}

	if err := r.config.notifier.NotifyPull(ctx, pull); err != nil {
		ctxlog.From(ctx).Error("Failed to notify pull",
			"error", err,
			"id", pull.ID,
		)
	}
}

// Get returns a stored pull
func (r *Report) Get(ctx context.Context, id types.PullID) (*model.Pull, error) {
	pull, err := r.repo.GetPull(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull", goerr.V("id", id))
	}
	return pull, nil
}

// List returns stored pulls, newest first
func (r *Report) List(ctx context.Context, limit int) ([]*model.Pull, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	pulls, err := r.repo.ListPulls(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pulls")
	}
	return pulls, nil
}

var _ interfaces.Report = (*Report)(nil)
