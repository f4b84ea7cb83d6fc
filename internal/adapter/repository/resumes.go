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

// listOpts sorts user-scoped listings newest first.
var listOpts = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func userFilter(userID string) bson.M {
	return bson.M{"user_id": userID}
}

func idFilter(userID, id string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid, "user_id": userID}, true
}

// TailoredResumeRepo persists job-tailored resume snapshots.
type TailoredResumeRepo struct {
	coll *mongo.Collection
}

func NewTailoredResumeRepo(db *mongo.Database) *TailoredResumeRepo {
	return &TailoredResumeRepo{coll: db.Collection(collTailored)}
}

func (r *TailoredResumeRepo) Create(ctx context.Context, doc *model.TailoredResume) (*model.TailoredResume, error) {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert tailored resume: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc, nil
}

func (r *TailoredResumeRepo) List(ctx context.Context, userID string) ([]model.TailoredResume, error) {
	cur, err := r.coll.Find(ctx, userFilter(userID), listOpts)
	if err != nil {
		return nil, fmt.Errorf("list tailored resumes: %w", err)
	}
	var docs []model.TailoredResume
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tailored resumes: %w", err)
	}
	return docs, nil
}

func (r *TailoredResumeRepo) Get(ctx context.Context, userID, id string) (*model.TailoredResume, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return nil, nil
	}
	var doc model.TailoredResume
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tailored resume: %w", err)
	}
	return &doc, nil
}

func (r *TailoredResumeRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete tailored resume: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// BuiltResumeRepo persists editable resumes built in the UI.
type BuiltResumeRepo struct {
	coll *mongo.Collection
}

func NewBuiltResumeRepo(db *mongo.Database) *BuiltResumeRepo {
	return &BuiltResumeRepo{coll: db.Collection(collBuilt)}
}

func (r *BuiltResumeRepo) Create(ctx context.Context, doc *model.BuiltResume) (*model.BuiltResume, error) {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert built resume: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc, nil
}

func (r *BuiltResumeRepo) Update(ctx context.Context, userID, id string, title string, resume model.ResumeStructured, templateID string) (*model.BuiltResume, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return nil, nil
	}
	update := bson.M{"$set": bson.M{
		"title":       title,
		"resume":      resume,
		"template_id": templateID,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out model.BuiltResume
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update built resume: %w", err)
	}
	return &out, nil
}

func (r *BuiltResumeRepo) List(ctx context.Context, userID string) ([]model.BuiltResume, error) {
	cur, err := r.coll.Find(ctx, userFilter(userID), listOpts)
	if err != nil {
		return nil, fmt.Errorf("list built resumes: %w", err)
	}
	var docs []model.BuiltResume
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode built resumes: %w", err)
	}
	return docs, nil
}

func (r *BuiltResumeRepo) Get(ctx context.Context, userID, id string) (*model.BuiltResume, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return nil, nil
	}
	var doc model.BuiltResume
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find built resume: %w", err)
	}
	return &doc, nil
}

func (r *BuiltResumeRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete built resume: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// CoverLetterRepo persists tailored cover letters.
type CoverLetterRepo struct {
	coll *mongo.Collection
}

func NewCoverLetterRepo(db *mongo.Database) *CoverLetterRepo {
	return &CoverLetterRepo{coll: db.Collection(collCoverLetters)}
}

func (r *CoverLetterRepo) Create(ctx context.Context, doc *model.TailoredCoverLetter) (*model.TailoredCoverLetter, error) {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cover letter: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc, nil
}

func (r *CoverLetterRepo) List(ctx context.Context, userID string) ([]model.TailoredCoverLetter, error) {
	cur, err := r.coll.Find(ctx, userFilter(userID), listOpts)
	if err != nil {
		return nil, fmt.Errorf("list cover letters: %w", err)
	}
	var docs []model.TailoredCoverLetter
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cover letters: %w", err)
	}
	return docs, nil
}

func (r *CoverLetterRepo) Get(ctx context.Context, userID, id string) (*model.TailoredCoverLetter, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return nil, nil
	}
	var doc model.TailoredCoverLetter
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find cover letter: %w", err)
	}
	return &doc, nil
}

func (r *CoverLetterRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	filter, ok := idFilter(userID, id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete cover letter: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ArtifactRepo records generated export files.
type ArtifactRepo struct {
	coll *mongo.Collection
}

func NewArtifactRepo(db *mongo.Database) *ArtifactRepo {
	return &ArtifactRepo{coll: db.Collection(collArtifacts)}
}

func (r *ArtifactRepo) Create(ctx context.Context, doc *model.Artifact) (*model.Artifact, error) {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artifact: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc, nil
}

func (r *ArtifactRepo) List(ctx context.Context, userID string) ([]model.Artifact, error) {
	cur, err := r.coll.Find(ctx, userFilter(userID), listOpts)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	var docs []model.Artifact
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	return docs, nil
}
