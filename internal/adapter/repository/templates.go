package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-tailor/internal/model"
)

type TemplateRepo struct {
	coll *mongo.Collection
}

func NewTemplateRepo(db *mongo.Database) *TemplateRepo {
	return &TemplateRepo{coll: db.Collection(collTemplates)}
}

// EnsureDefault seeds the canonical default template on first boot. A
// template named "default" that already exists is left untouched.
func (r *TemplateRepo) EnsureDefault(ctx context.Context) error {
	err := r.coll.FindOne(ctx, bson.M{"name": "default"}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check default template: %w", err)
	}

	doc := &model.ResumeTemplateDoc{
		Name:      "default",
		Version:   1,
		IsDefault: true,
		Theme:     model.DefaultTheme(),
		Blocks:    model.DefaultTemplateBlocks(),
	}
	_, err = r.Create(ctx, doc)
	return err
}

// Create inserts a template. A document marked default demotes any other
// default first so at most one default exists.
func (r *TemplateRepo) Create(ctx context.Context, doc *model.ResumeTemplateDoc) (*model.ResumeTemplateDoc, error) {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Normalize()

	if doc.IsDefault {
		if err := r.unsetOtherDefaults(ctx, primitive.NilObjectID); err != nil {
			return nil, err
		}
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc, nil
}

// Update replaces the mutable fields of a template and keeps the single-
// default invariant.
func (r *TemplateRepo) Update(ctx context.Context, id string, tpl model.ResumeTemplate) (*model.ResumeTemplateDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	if tpl.IsDefault {
		if err := r.unsetOtherDefaults(ctx, oid); err != nil {
			return nil, err
		}
	}
	if tpl.Version < 1 {
		tpl.Version = 1
	}

	update := bson.M{"$set": bson.M{
		"name":       tpl.Name,
		"version":    tpl.Version,
		"is_default": tpl.IsDefault,
		"theme":      tpl.Theme.Normalized(),
		"blocks":     tpl.Blocks,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out model.ResumeTemplateDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return &out, nil
}

func (r *TemplateRepo) unsetOtherDefaults(ctx context.Context, keep primitive.ObjectID) error {
	filter := bson.M{"is_default": true}
	if !keep.IsZero() {
		filter["_id"] = bson.M{"$ne": keep}
	}
	_, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_default": false}})
	if err != nil {
		return fmt.Errorf("unset defaults: %w", err)
	}
	return nil
}

// GetDefault returns the default template, or the seeded fallback values
// when none is marked.
func (r *TemplateRepo) GetDefault(ctx context.Context) (*model.ResumeTemplateDoc, error) {
	var doc model.ResumeTemplateDoc
	err := r.coll.FindOne(ctx, bson.M{"is_default": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &model.ResumeTemplateDoc{
			Name:      "default",
			Version:   1,
			IsDefault: true,
			Theme:     model.DefaultTheme(),
			Blocks:    model.DefaultTemplateBlocks(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find default template: %w", err)
	}
	return &doc, nil
}

// Get returns (nil, nil) when the id is unknown or malformed.
func (r *TemplateRepo) Get(ctx context.Context, id string) (*model.ResumeTemplateDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc model.ResumeTemplateDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template: %w", err)
	}
	return &doc, nil
}

func (r *TemplateRepo) List(ctx context.Context) ([]model.ResumeTemplateDoc, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	var docs []model.ResumeTemplateDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return docs, nil
}

// Duplicate copies an existing template under a new name, never as default.
func (r *TemplateRepo) Duplicate(ctx context.Context, id, name string) (*model.ResumeTemplateDoc, error) {
	src, err := r.Get(ctx, id)
	if err != nil || src == nil {
		return nil, err
	}
	copyDoc := &model.ResumeTemplateDoc{
		Name:      name,
		Version:   src.Version,
		IsDefault: false,
		Theme:     src.Theme,
		Blocks:    src.Blocks,
	}
	if copyDoc.Name == "" {
		copyDoc.Name = src.Name + " (copy)"
	}
	return r.Create(ctx, copyDoc)
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete template: %w", err)
	}
	return res.DeletedCount > 0, nil
}
