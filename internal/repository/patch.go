package repository

import (
	"context"
	"errors"
	"fmt"

	"valorhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatchRepository defines the interface for patch note data operations
type PatchRepository interface {
	List(ctx context.Context) ([]models.Patch, error)
	Create(ctx context.Context, patch *models.Patch) error
	// Update applies the non-empty fields of upd to the matching patch and
	// returns the post-mutation document, or nil if no patch matched.
	Update(ctx context.Context, id int64, upd models.PatchUpdate) (*models.Patch, error)
	// Delete removes the patch with the given id and reports how many
	// documents were removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// patchRepository implements PatchRepository
type patchRepository struct {
	col *mongo.Collection
}

// NewPatchRepository creates a new patch repository
func NewPatchRepository(db *mongo.Database) PatchRepository {
	return &patchRepository{col: db.Collection("patches")}
}

func (r *patchRepository) List(ctx context.Context) ([]models.Patch, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list patches: %w", err)
	}
	defer cur.Close(ctx)

	var patches []models.Patch
	if err := cur.All(ctx, &patches); err != nil {
		return nil, fmt.Errorf("decode patches: %w", err)
	}
	if patches == nil {
		patches = []models.Patch{}
	}
	return patches, nil
}

func (r *patchRepository) Create(ctx context.Context, patch *models.Patch) error {
	if _, err := r.col.InsertOne(ctx, patch); err != nil {
		return fmt.Errorf("insert patch: %w", err)
	}
	return nil
}

func (r *patchRepository) Update(ctx context.Context, id int64, upd models.PatchUpdate) (*models.Patch, error) {
	set := buildPatchSet(upd)

	var patch models.Patch
	var err error
	if len(set) == 0 {
		// Nothing to overwrite; an empty $set is rejected by the server, so
		// treat this as a pure lookup.
		err = r.col.FindOne(ctx, bson.M{"id": id}).Decode(&patch)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&patch)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update patch: %w", err)
	}
	return &patch, nil
}

// buildPatchSet maps the non-empty fields of a partial update onto a $set
// document. Absent fields stay out of the mutation entirely.
func buildPatchSet(upd models.PatchUpdate) bson.M {
	set := bson.M{}
	if upd.Version != "" {
		set["version"] = upd.Version
	}
	if upd.Date != "" {
		set["date"] = upd.Date
	}
	if upd.Text != "" {
		set["text"] = upd.Text
	}
	return set
}

func (r *patchRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete patch: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *patchRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count patches: %w", err)
	}
	return n, nil
}
