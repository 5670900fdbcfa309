package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutLogCollectionName = "workout_logs"

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new workout log repository backed by MongoDB.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Insert appends a new log row. The id and created_at are assigned here;
// the row is never updated afterwards.
func (r *mongoWorkoutLogRepository) Insert(ctx context.Context, logRow *domain.WorkoutLog) (primitive.ObjectID, error) {
	if logRow.CoachCode == "" || logRow.ClientName == "" {
		return primitive.NilObjectID, errors.New("workout log requires coach_code and client_name")
	}

	logRow.ID = primitive.NewObjectID()
	logRow.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, logRow)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// ListAll retrieves every log row, newest first.
func (r *mongoWorkoutLogRepository) ListAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	var rows []domain.WorkoutLog
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Return empty slice if no rows found
	return rows, nil
}

// ListIDs retrieves the ids of every log row. Used by the bulk reset, which
// deletes by explicit id list instead of an unfiltered delete.
func (r *mongoWorkoutLogRepository) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// DeleteByIDs removes exactly the given id set and returns the count deleted.
func (r *mongoWorkoutLogRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Admin listing sorts newest first.
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index(),
		},
		{
			// Per-coach grouping in the admin summary.
			Keys:    bson.D{{Key: "coach_code", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
