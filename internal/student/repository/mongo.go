package repository

import (
	"context"
	"errors"

	"github.com/studydesk/go-services/internal/student"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores students as plain documents; _id is never exposed.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

var withoutID = bson.M{"_id": 0}

func (m *MongoRepo) Create(ctx context.Context, s *student.Student) error {
	doc := *s
	if doc.Courses == nil {
		doc.Courses = []student.Course{}
	}
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *MongoRepo) List(ctx context.Context) ([]*student.Student, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*student.Student{}
	for cur.Next(ctx) {
		var s student.Student
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (m *MongoRepo) GetByStudentID(ctx context.Context, studentID string) (*student.Student, error) {
	var s student.Student
	err := m.col.FindOne(ctx, bson.M{"student_id": studentID}, options.FindOne().SetProjection(withoutID)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (m *MongoRepo) DeleteByStudentID(ctx context.Context, studentID string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
