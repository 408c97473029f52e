package model

import (
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// QueryProfile is a saved set of search conditions loaded from YAML
type QueryProfile struct {
	Term           string               `yaml:"term"`                      // Full-text search term
	Types          []types.DocumentType `yaml:"types,omitempty"`           // Document types to include
	IncludeNotices bool                 `yaml:"include_notices,omitempty"` // Adds NOTICE to Types
	Bound          types.BoundPolicy    `yaml:"bound,omitempty"`           // observed or requested
}

// Validate validates the profile
func (p *QueryProfile) Validate() error {
	if p.Term == "" {
		return goerr.New("profile term is required")
	}

	seen := make(map[types.DocumentType]bool)
	for i, t := range p.Types {
		if !t.IsValid() {
			return goerr.New("invalid document type in profile",
				goerr.V("index", i),
				goerr.V("type", t))
		}
		if seen[t] {
			return goerr.New("duplicate document type in profile",
				goerr.V("type", t))
		}
		seen[t] = true
	}

	if p.Bound != "" && !p.Bound.IsValid() {
		return goerr.New("invalid bound policy in profile",
			goerr.V("bound", p.Bound))
	}

	return nil
}

// DocumentTypes returns the configured types, falling back to final and proposed rules
func (p *QueryProfile) DocumentTypes() []types.DocumentType {
	result := append([]types.DocumentType{}, p.Types...)
	if len(result) == 0 {
		result = types.DefaultDocumentTypes()
	}
	if p.IncludeNotices && !containsType(result, types.DocumentTypeNotice) {
		result = append(result, types.DocumentTypeNotice)
	}
	return result
}

func containsType(list []types.DocumentType, t types.DocumentType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
