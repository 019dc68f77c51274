package repository

import (
	"context"
	"errors"

	"github.com/studydesk/go-services/internal/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements a MongoDB-backed repository for notes.
// Notes are keyed by the ObjectID in _id; the API exposes its hex form as "id".
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

type noteDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Timestamp string             `bson:"timestamp"`
}

func (d *noteDoc) toNote() *note.Note {
	return &note.Note{ID: d.ID.Hex(), Title: d.Title, Content: d.Content, Timestamp: d.Timestamp}
}

// objectID parses a note id; malformed ids cannot match any document.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (m *MongoRepo) Create(ctx context.Context, n *note.Note) (string, error) {
	doc := noteDoc{Title: n.Title, Content: n.Content, Timestamp: n.Timestamp}
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	n.ID = oid.Hex()
	return n.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d noteDoc
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d.toNote(), nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*note.Note, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*note.Note{}
	for cur.Next(ctx) {
		var d noteDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toNote())
	}
	return out, cur.Err()
}

// Update matches on _id; a matched document counts as updated even when the
// new values equal the stored ones.
func (m *MongoRepo) Update(ctx context.Context, id, title, content string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{"title": title, "content": content}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
