package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studydesk/go-services/internal/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		n := &note.Note{Title: "T", Content: "C", Timestamp: "2025-01-01T10:00:00Z"}
		id, err := repo.Create(ctx, n)
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		require.NoError(mt, err)
		require.Equal(mt, id, n.ID)
	})

	mt.Run("get found", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "studydesk.notes", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "T"},
			{Key: "content", Value: "C"},
			{Key: "timestamp", Value: "2025-01-01T10:00:00Z"},
		}))
		got, err := repo.Get(ctx, oid.Hex())
		require.NoError(mt, err)
		require.Equal(mt, &note.Note{ID: oid.Hex(), Title: "T", Content: "C", Timestamp: "2025-01-01T10:00:00Z"}, got)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "studydesk.notes", mtest.FirstBatch))
		_, err := repo.Get(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed id is not found without a round trip", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		_, err := repo.Get(ctx, "not-an-object-id")
		require.ErrorIs(mt, err, ErrNotFound)
		require.ErrorIs(mt, repo.Update(ctx, "zzz", "t", "c"), ErrNotFound)
		require.ErrorIs(mt, repo.Delete(ctx, "zzz"), ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "studydesk.notes", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "a"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "b"}},
		))
		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, "a", list[0].Title)
	})

	mt.Run("update matched and unmatched", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		// same values: matched but not modified still succeeds
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))
		require.NoError(mt, repo.Update(ctx, primitive.NewObjectID().Hex(), "t", "c"))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		require.ErrorIs(mt, repo.Update(ctx, primitive.NewObjectID().Hex(), "t", "c"), ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		require.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), ErrNotFound)
	})

	mt.Run("driver error surfaces", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad value"}))
		_, err := repo.List(ctx)
		require.Error(mt, err)
		require.NotErrorIs(mt, err, ErrNotFound)
	})
}
