package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"news-explorer/internal/domain/entity"
)

func articleDoc(id, owner primitive.ObjectID, url string, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
		{Key: "keyword", Value: "golang"},
		{Key: "source", Value: "The Register"},
		{Key: "title", Value: "Go 1.26 released"},
		{Key: "content", Value: "Body"},
		{Key: "url", Value: url},
		{Key: "publishedAt", Value: primitive.NewDateTimeFromTime(created.Add(-time.Hour))},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
	}
}

func TestArticleRepo_ListByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	owner := primitive.NewObjectID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("returns owner's articles in store order", func(mt *mtest.T) {
		newer, older := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "news.articles", mtest.FirstBatch,
			articleDoc(newer, owner, "https://example.com/b", now),
			articleDoc(older, owner, "https://example.com/a", now.Add(-time.Minute)),
		))
		repo := NewArticleRepo(mt.DB)

		articles, err := repo.ListByOwner(context.Background(), owner.Hex())

		require.NoError(mt, err)
		require.Len(mt, articles, 2)
		assert.Equal(mt, newer.Hex(), articles[0].ID)
		assert.Equal(mt, owner.Hex(), articles[0].OwnerID)
		assert.Equal(mt, "https://example.com/b", articles[0].URL)
		assert.Equal(mt, now, articles[0].CreatedAt.UTC())

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, owner, evt.Command.Lookup("filter", "owner").ObjectID())
		assert.Equal(mt, int64(-1), evt.Command.Lookup("sort", "createdAt").AsInt64())
	})

	mt.Run("empty is a non-nil slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "news.articles", mtest.FirstBatch))
		repo := NewArticleRepo(mt.DB)

		articles, err := repo.ListByOwner(context.Background(), owner.Hex())

		require.NoError(mt, err)
		assert.NotNil(mt, articles)
		assert.Empty(mt, articles)
	})

	mt.Run("store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))
		repo := NewArticleRepo(mt.DB)

		_, err := repo.ListByOwner(context.Background(), owner.Hex())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "ListByOwner")
	})
}

func TestArticleRepo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	owner := primitive.NewObjectID()

	newArticle := func() *entity.Article {
		return &entity.Article{
			OwnerID:     owner.Hex(),
			Keyword:     "golang",
			Title:       "Go 1.26 released",
			Content:     "Body",
			URL:         "https://example.com/go",
			PublishedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	mt.Run("stores owner as object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewArticleRepo(mt.DB)
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.(*ArticleRepo).now = func() time.Time { return fixed }

		article := newArticle()
		require.NoError(mt, repo.Create(context.Background(), article))

		assert.True(mt, entity.IsObjectID(article.ID))
		assert.Equal(mt, fixed, article.CreatedAt)

		doc := mt.GetStartedEvent().Command.Lookup("documents", "0").Document()
		assert.Equal(mt, owner, doc.Lookup("owner").ObjectID())
		assert.Equal(mt, "https://example.com/go", doc.Lookup("url").StringValue())
		_, err := doc.LookupErr("urlToImage")
		assert.Error(mt, err, "empty optional fields are omitted")
	})

	mt.Run("duplicate url for owner", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error index: owner_url_unique",
		}))
		repo := NewArticleRepo(mt.DB)

		err := repo.Create(context.Background(), newArticle())

		assert.ErrorIs(mt, err, entity.ErrDuplicateKey)
	})

	mt.Run("document validation failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "Document failed validation",
		}))
		repo := NewArticleRepo(mt.DB)

		err := repo.Create(context.Background(), newArticle())

		assert.ErrorIs(mt, err, entity.ErrValidationFailed)
		assert.NotErrorIs(mt, err, entity.ErrDuplicateKey)
	})

	mt.Run("malformed owner", func(mt *mtest.T) {
		repo := NewArticleRepo(mt.DB)
		article := newArticle()
		article.OwnerID = "nope"

		err := repo.Create(context.Background(), article)

		assert.ErrorIs(mt, err, entity.ErrValidationFailed)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}

func TestArticleRepo_DeleteOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("deletes with id and owner in one filter", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value", Value: articleDoc(id, owner, "https://example.com/a", now),
		}))
		repo := NewArticleRepo(mt.DB)

		article, err := repo.DeleteOwned(context.Background(), id.Hex(), owner.Hex())

		require.NoError(mt, err)
		require.NotNil(mt, article)
		assert.Equal(mt, id.Hex(), article.ID)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("query", "_id").ObjectID())
		assert.Equal(mt, owner, evt.Command.Lookup("query", "owner").ObjectID())
		assert.True(mt, evt.Command.Lookup("remove").Boolean())
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		repo := NewArticleRepo(mt.DB)

		article, err := repo.DeleteOwned(context.Background(), id.Hex(), primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Nil(mt, article)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewArticleRepo(mt.DB)

		article, err := repo.DeleteOwned(context.Background(), "zz", owner.Hex())

		require.NoError(mt, err)
		assert.Nil(mt, article)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}
