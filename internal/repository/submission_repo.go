package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"allyship/internal/model"
)

// SubmissionRepo archives final assessment snapshots in MongoDB.
type SubmissionRepo interface {
	Save(ctx context.Context, sub *model.Submission) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) (*model.Submission, error)
	List(ctx context.Context, limit int64) ([]*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Save(ctx context.Context, sub *model.Submission) (string, error) {
	sub.SubmittedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *submissionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Submission, error) {
	var sub model.Submission
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) List(ctx context.Context, limit int64) ([]*model.Submission, error) {
	opts := options.Find().
		SetSort(bson.M{"submittedAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*model.Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
