package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accessCodeCollectionName = "access_codes"

// mongoAccessCodeRepository implements repository.AccessCodeRepository
type mongoAccessCodeRepository struct {
	collection *mongo.Collection
}

// NewMongoAccessCodeRepository creates a new access code directory backed by MongoDB.
func NewMongoAccessCodeRepository(db *mongo.Database) repository.AccessCodeRepository {
	return &mongoAccessCodeRepository{
		collection: db.Collection(accessCodeCollectionName),
	}
}

// GetByCode retrieves a directory row by its code, regardless of role.
func (r *mongoAccessCodeRepository) GetByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	var ac domain.AccessCode
	filter := bson.M{"code": code}

	err := r.collection.FindOne(ctx, filter).Decode(&ac)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &ac, nil
}

// GetCoachByCode retrieves a directory row constrained to role=coach.
func (r *mongoAccessCodeRepository) GetCoachByCode(ctx context.Context, code string) (*domain.AccessCode, error) {
	var ac domain.AccessCode
	filter := bson.M{"code": code, "role": domain.RoleCoach}

	err := r.collection.FindOne(ctx, filter).Decode(&ac)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &ac, nil
}

// Upsert inserts or replaces a directory row. Used only by the out-of-band
// seeding tool, never by a request handler.
func (r *mongoAccessCodeRepository) Upsert(ctx context.Context, ac *domain.AccessCode) error {
	if ac.Code == "" || ac.Role == "" {
		return errors.New("access code requires code and role")
	}

	now := time.Now().UTC()
	if ac.CreatedAt.IsZero() {
		ac.CreatedAt = now
	}
	ac.UpdatedAt = now

	filter := bson.M{"code": ac.Code}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, ac, opts)
	return err
}

// EnsureAccessCodeIndexes creates necessary indexes. Call during startup.
func EnsureAccessCodeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
