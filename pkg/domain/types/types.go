package types

import (
	"github.com/google/uuid"
)

// PullID identifies one stored registry pull
type PullID string

// String returns the string representation
func (id PullID) String() string {
	return string(id)
}

// NewPullID creates a new PullID using UUID v7 so IDs sort by creation time
func NewPullID() (PullID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return PullID(id.String()), nil
}

// DocumentType is a Federal Register document type used as a search condition
type DocumentType string

const (
	DocumentTypeRule         DocumentType = "RULE"
	DocumentTypeProposedRule DocumentType = "PRORULE"
	DocumentTypeNotice       DocumentType = "NOTICE"
	DocumentTypePresidential DocumentType = "PRESDOCU"
)

// String returns the string representation
func (t DocumentType) String() string {
	return string(t)
}

// IsValid checks if the document type is one the registry accepts
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeRule, DocumentTypeProposedRule, DocumentTypeNotice, DocumentTypePresidential:
		return true
	default:
		return false
	}
}

// DefaultDocumentTypes returns final and proposed rules
func DefaultDocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypeRule, DocumentTypeProposedRule}
}

// BoundPolicy selects which months a series covers
type BoundPolicy string

const (
	// BoundObserved covers the earliest to the latest month present in the returned data
	BoundObserved BoundPolicy = "observed"
	// BoundRequested covers the requested date range, widened to any data outside it
	BoundRequested BoundPolicy = "requested"
)

// String returns the string representation
func (p BoundPolicy) String() string {
	return string(p)
}

// IsValid checks if the policy is known
func (p BoundPolicy) IsValid() bool {
	return p == BoundObserved || p == BoundRequested
}
