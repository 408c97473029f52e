package model_test

import (
	"testing"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestQueryProfileValidate(t *testing.T) {
	t.Run("minimal profile", func(t *testing.T) {
		p := model.QueryProfile{Term: "Small Business"}
		gt.NoError(t, p.Validate())
	})

	t.Run("error when term is empty", func(t *testing.T) {
		p := model.QueryProfile{}
		gt.Error(t, p.Validate())
	})

	t.Run("error on unknown type", func(t *testing.T) {
		p := model.QueryProfile{Term: "x", Types: []types.DocumentType{"RULE", "MEMO"}}
		gt.Error(t, p.Validate())
	})

	t.Run("error on duplicate type", func(t *testing.T) {
		p := model.QueryProfile{Term: "x", Types: []types.DocumentType{"RULE", "RULE"}}
		gt.Error(t, p.Validate())
	})

	t.Run("error on unknown bound policy", func(t *testing.T) {
		p := model.QueryProfile{Term: "x", Bound: "everything"}
		gt.Error(t, p.Validate())
	})
}

func TestQueryProfileDocumentTypes(t *testing.T) {
	t.Run("defaults to rules and proposed rules", func(t *testing.T) {
		p := model.QueryProfile{Term: "x"}
		gt.Equal(t, p.DocumentTypes(), []types.DocumentType{types.DocumentTypeRule, types.DocumentTypeProposedRule})
	})

	t.Run("include notices appends NOTICE once", func(t *testing.T) {
		p := model.QueryProfile{Term: "x", IncludeNotices: true}
		gt.Equal(t, p.DocumentTypes(), []types.DocumentType{
			types.DocumentTypeRule, types.DocumentTypeProposedRule, types.DocumentTypeNotice,
		})

		p.Types = []types.DocumentType{types.DocumentTypeNotice}
		gt.Equal(t, p.DocumentTypes(), []types.DocumentType{types.DocumentTypeNotice})
	})
}
