package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	pullsCollection = "pulls"

	fieldCreatedAt = "created_at"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on a wrong project or missing permissions
	_, err = client.Collection(pullsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutPull saves a pull to Firestore
func (f *Firestore) PutPull(ctx context.Context, pull *model.Pull) error {
	if pull == nil {
		return goerr.New("pull is nil")
	}
	if pull.ID == "" {
		return goerr.New("pull ID is empty")
	}

	_, err := f.client.Collection(pullsCollection).Doc(pull.ID.String()).Set(ctx, pull)
	if err != nil {
		return goerr.Wrap(err, "failed to save pull to firestore", goerr.V("id", pull.ID))
	}

	return nil
}

// GetPull retrieves a pull by ID
func (f *Firestore) GetPull(ctx context.Context, id types.PullID) (*model.Pull, error) {
	if id == "" {
		return nil, goerr.New("pull ID is empty")
	}

	doc, err := f.client.Collection(pullsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrPullNotFound, "failed to get pull", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get pull from firestore", goerr.V("id", id))
	}

	var pull model.Pull
	if err := doc.DataTo(&pull); err != nil {
		return nil, goerr.Wrap(err, "failed to decode pull", goerr.V("id", id))
	}

	return &pull, nil
}

// ListPulls returns pulls newest first. A limit of zero or less returns every pull.
func (f *Firestore) ListPulls(ctx context.Context, limit int) ([]*model.Pull, error) {
	query := f.client.Collection(pullsCollection).OrderBy(fieldCreatedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var pulls []*model.Pull
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate pulls")
		}

		var pull model.Pull
		if err := doc.DataTo(&pull); err != nil {
			return nil, goerr.Wrap(err, "failed to decode pull", goerr.V("docID", doc.Ref.ID))
		}
		pulls = append(pulls, &pull)
	}

	return pulls, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
