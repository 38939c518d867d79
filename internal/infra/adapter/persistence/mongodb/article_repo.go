package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-explorer/internal/domain/entity"
	"news-explorer/internal/infra/db"
	"news-explorer/internal/repository"
)

type articleDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Owner       primitive.ObjectID `bson:"owner"`
	Keyword     string             `bson:"keyword"`
	Source      string             `bson:"source,omitempty"`
	Title       string             `bson:"title"`
	Author      string             `bson:"author,omitempty"`
	Description string             `bson:"description,omitempty"`
	Content     string             `bson:"content"`
	URL         string             `bson:"url"`
	URLToImage  string             `bson:"urlToImage,omitempty"`
	PublishedAt time.Time          `bson:"publishedAt"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d articleDocument) toEntity() *entity.Article {
	return &entity.Article{
		ID:          d.ID.Hex(),
		OwnerID:     d.Owner.Hex(),
		Keyword:     d.Keyword,
		Source:      d.Source,
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		Content:     d.Content,
		URL:         d.URL,
		URLToImage:  d.URLToImage,
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
	}
}

type ArticleRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewArticleRepo(database *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{
		coll: database.Collection(db.ArticlesCollection),
		now:  time.Now,
	}
}

func (repo *ArticleRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Article, error) {
	defer observe("articles.find_by_owner")()

	articles := make([]*entity.Article, 0)

	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return articles, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := repo.coll.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	for cur.Next(ctx) {
		var doc articleDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("ListByOwner: Decode: %w", err)
		}
		articles = append(articles, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observe("articles.insert")()

	owner, err := primitive.ObjectIDFromHex(article.OwnerID)
	if err != nil {
		return fmt.Errorf("Create: owner %q: %w", article.OwnerID, entity.ErrValidationFailed)
	}

	doc := articleDocument{
		ID:          primitive.NewObjectID(),
		Owner:       owner,
		Keyword:     article.Keyword,
		Source:      article.Source,
		Title:       article.Title,
		Author:      article.Author,
		Description: article.Description,
		Content:     article.Content,
		URL:         article.URL,
		URLToImage:  article.URLToImage,
		PublishedAt: article.PublishedAt.UTC().Truncate(time.Millisecond),
		CreatedAt:   repo.now().UTC().Truncate(time.Millisecond),
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return classify("Create", err)
	}
	article.ID = doc.ID.Hex()
	article.PublishedAt = doc.PublishedAt
	article.CreatedAt = doc.CreatedAt
	return nil
}

func (repo *ArticleRepo) DeleteOwned(ctx context.Context, id, ownerID string) (*entity.Article, error) {
	defer observe("articles.delete_owned")()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, nil
	}

	var doc articleDocument
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "owner", Value: owner}}
	err = repo.coll.FindOneAndDelete(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("DeleteOwned: %w", err)
	}
	return doc.toEntity(), nil
}
