package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/federalregister"
	"github.com/urfave/cli/v3"
)

// Registry holds the registry client and search configuration
type Registry struct {
	BaseURL        string
	Term           string
	Types          []string
	IncludeNotices bool
	Timeout        time.Duration
	Bound          string
	Profile        string
}

// Flags returns CLI flags for Registry configuration
func (r *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry-url",
			Usage:       "Federal Register documents search URL",
			Category:    "Registry",
			Value:       federalregister.DefaultBaseURL,
			Sources:     cli.EnvVars("FRTALLY_REGISTRY_URL"),
			Destination: &r.BaseURL,
		},
		&cli.StringFlag{
			Name:        "term",
			Usage:       "Full-text search term",
			Category:    "Registry",
			Value:       model.DefaultSearchTerm,
			Sources:     cli.EnvVars("FRTALLY_TERM"),
			Destination: &r.Term,
		},
		&cli.StringSliceFlag{
			Name:        "type",
			Usage:       "Document type to include (RULE, PRORULE, NOTICE, PRESDOCU). Repeatable; defaults to RULE and PRORULE",
			Category:    "Registry",
			Sources:     cli.EnvVars("FRTALLY_TYPES"),
			Destination: &r.Types,
		},
		&cli.BoolFlag{
			Name:        "include-notices",
			Usage:       "Also include NOTICE documents",
			Category:    "Registry",
			Sources:     cli.EnvVars("FRTALLY_INCLUDE_NOTICES"),
			Destination: &r.IncludeNotices,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Registry request timeout",
			Category:    "Registry",
			Value:       federalregister.DefaultTimeout,
			Sources:     cli.EnvVars("FRTALLY_TIMEOUT"),
			Destination: &r.Timeout,
		},
		&cli.StringFlag{
			Name:        "bound",
			Usage:       "Month range of the series (observed: months with notices, requested: the requested dates)",
			Category:    "Registry",
			Value:       types.BoundObserved.String(),
			Sources:     cli.EnvVars("FRTALLY_BOUND"),
			Destination: &r.Bound,
		},
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "YAML query profile (term, types, include_notices, bound)",
			Category:    "Registry",
			Sources:     cli.EnvVars("FRTALLY_PROFILE"),
			Destination: &r.Profile,
		},
	}
}

// Configure creates the registry client
func (r *Registry) Configure() *federalregister.Client {
	return federalregister.New(
		federalregister.WithBaseURL(r.BaseURL),
		federalregister.WithTimeout(r.Timeout),
	)
}

// Resolve merges the profile file, if any, with the flags. Flags set explicitly on the command
// line win over the profile.
func (r *Registry) Resolve(c *cli.Command) (*model.QueryProfile, error) {
	profile := &model.QueryProfile{}
	if r.Profile != "" {
		loaded, err := LoadProfile(r.Profile)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if r.Profile == "" || c.IsSet("term") {
		profile.Term = strings.TrimSpace(r.Term)
	}
	if r.Profile == "" || c.IsSet("type") {
		profile.Types = nil
		for _, t := range r.Types {
			profile.Types = append(profile.Types, types.DocumentType(strings.ToUpper(strings.TrimSpace(t))))
		}
	}
	if r.Profile == "" || c.IsSet("include-notices") {
		profile.IncludeNotices = r.IncludeNotices
	}
	if r.Profile == "" || c.IsSet("bound") || profile.Bound == "" {
		profile.Bound = types.BoundPolicy(strings.ToLower(r.Bound))
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// LogValue returns structured log value
func (r Registry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", r.BaseURL),
		slog.String("term", r.Term),
		slog.Any("types", r.Types),
		slog.Bool("include_notices", r.IncludeNotices),
		slog.Duration("timeout", r.Timeout),
		slog.String("bound", r.Bound),
		slog.String("profile", r.Profile),
	)
}
