package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asdscreen/internal/model"
)

// RecordRepository archives completed screening runs.
type RecordRepository interface {
	Create(ctx context.Context, record *model.ScreeningRecord) error
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.ScreeningRecord, error)
	List(ctx context.Context, limit int64) ([]*model.ScreeningRecord, error)
}

type recordRepository struct {
	collection *mongo.Collection
}

// NewRecordRepo creates a Mongo-backed record repository.
func NewRecordRepo(db *mongo.Database) RecordRepository {
	return &recordRepository{
		collection: db.Collection("screening_records"),
	}
}

func (r *recordRepository) Create(ctx context.Context, record *model.ScreeningRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}

	return nil
}

func (r *recordRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*model.ScreeningRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.ScreeningRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *recordRepository) List(ctx context.Context, limit int64) ([]*model.ScreeningRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.ScreeningRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
