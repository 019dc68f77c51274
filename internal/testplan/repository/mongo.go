package repository

import (
	"context"
	"errors"
	"time"

	"github.com/studydesk/go-services/internal/testplan"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

type recordDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	InputContent    string             `bson:"input_content"`
	GeneratedOutput string             `bson:"generated_output"`
	Timestamp       time.Time          `bson:"timestamp"`
}

func (m *MongoRepo) Create(ctx context.Context, r *testplan.Record) (string, error) {
	res, err := m.col.InsertOne(ctx, recordDoc{
		InputContent:    r.InputContent,
		GeneratedOutput: r.GeneratedOutput,
		Timestamp:       r.Timestamp,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	r.ID = oid.Hex()
	return r.ID, nil
}

// List returns records oldest first.
func (m *MongoRepo) List(ctx context.Context) ([]*testplan.Record, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*testplan.Record{}
	for cur.Next(ctx) {
		var d recordDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &testplan.Record{
			ID:              d.ID.Hex(),
			InputContent:    d.InputContent,
			GeneratedOutput: d.GeneratedOutput,
			Timestamp:       d.Timestamp.UTC(),
		})
	}
	return out, cur.Err()
}
