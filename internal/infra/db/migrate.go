package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection    = "users"
	ArticlesCollection = "articles"
)

// Index names, stable so that EnsureIndexes stays idempotent.
const (
	IndexUserEmail          = "email_unique"
	IndexArticleOwnerURL    = "owner_url_unique"
	IndexArticleOwnerRecent = "owner_created_at"
)

// EnsureIndexes creates the indexes the stores rely on. Email and
// (owner, url) uniqueness are enforced here, not in application code.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(IndexUserEmail).SetUnique(true),
		},
	}
	if _, err := database.Collection(UsersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("create %s indexes: %w", UsersCollection, err)
	}

	articles := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "url", Value: 1}},
			Options: options.Index().SetName(IndexArticleOwnerURL).SetUnique(true),
		},
		{
			// ListByOwner sorts newest first.
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName(IndexArticleOwnerRecent),
		},
	}
	if _, err := database.Collection(ArticlesCollection).Indexes().CreateMany(ctx, articles); err != nil {
		return fmt.Errorf("create %s indexes: %w", ArticlesCollection, err)
	}

	return nil
}

// namespaceExists is the server code returned when creating a collection that exists.
const namespaceExists = 48

// UserSchema is the $jsonSchema the users collection enforces.
var UserSchema = bson.M{
	"bsonType": "object",
	"required": bson.A{"name", "email", "password", "createdAt"},
	"properties": bson.M{
		"name":      bson.M{"bsonType": "string", "minLength": 2, "maxLength": 30},
		"email":     bson.M{"bsonType": "string", "minLength": 3},
		"password":  bson.M{"bsonType": "string", "minLength": 1},
		"createdAt": bson.M{"bsonType": "date"},
	},
}

// ArticleSchema is the $jsonSchema the articles collection enforces.
var ArticleSchema = bson.M{
	"bsonType": "object",
	"required": bson.A{"owner", "keyword", "title", "content", "url", "publishedAt", "createdAt"},
	"properties": bson.M{
		"owner":       bson.M{"bsonType": "objectId"},
		"keyword":     bson.M{"bsonType": "string", "minLength": 2, "maxLength": 30},
		"source":      bson.M{"bsonType": "string", "maxLength": 100},
		"title":       bson.M{"bsonType": "string", "minLength": 2},
		"author":      bson.M{"bsonType": "string", "maxLength": 200},
		"description": bson.M{"bsonType": "string"},
		"content":     bson.M{"bsonType": "string", "minLength": 1},
		"url":         bson.M{"bsonType": "string", "pattern": "^https?://"},
		"urlToImage":  bson.M{"bsonType": "string", "pattern": "^https?://"},
		"publishedAt": bson.M{"bsonType": "date"},
		"createdAt":   bson.M{"bsonType": "date"},
	},
}

// EnsureValidators installs the collection validators. A rejected write
// surfaces as server code 121, which the stores report as a validation failure.
// Existing collections get their validator replaced with collMod.
func EnsureValidators(ctx context.Context, database *mongo.Database) error {
	for _, c := range []struct {
		name   string
		schema bson.M
	}{
		{UsersCollection, UserSchema},
		{ArticlesCollection, ArticleSchema},
	} {
		if err := ensureValidator(ctx, database, c.name, c.schema); err != nil {
			return err
		}
	}
	return nil
}

func ensureValidator(ctx context.Context, database *mongo.Database, name string, schema bson.M) error {
	validator := bson.M{"$jsonSchema": schema}

	err := database.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
	if err == nil {
		return nil
	}

	var se mongo.ServerError
	if !errors.As(err, &se) || !se.HasErrorCode(namespaceExists) {
		return fmt.Errorf("create %s collection: %w", name, err)
	}

	cmd := bson.D{{Key: "collMod", Value: name}, {Key: "validator", Value: validator}}
	if err := database.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("update %s validator: %w", name, err)
	}
	return nil
}
