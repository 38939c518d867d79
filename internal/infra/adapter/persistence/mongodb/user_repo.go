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
	"news-explorer/internal/service/auth"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type UserRepo struct {
	coll   *mongo.Collection
	hasher auth.PasswordHasher
	now    func() time.Time
}

func NewUserRepo(database *mongo.Database, hasher auth.PasswordHasher) repository.UserRepository {
	return &UserRepo{
		coll:   database.Collection(db.UsersCollection),
		hasher: hasher,
		now:    time.Now,
	}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	defer observe("users.insert")()

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: repo.now().UTC().Truncate(time.Millisecond),
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return classify("Create", err)
	}
	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	defer observe("users.find_by_id")()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	err = repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer observe("users.exists_by_email")()

	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := repo.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return true, nil
}

func (repo *UserRepo) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	defer observe("users.find_by_email")()

	var doc userDocument
	err := repo.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("FindByCredentials: %w", err)
	}

	if err := repo.hasher.Compare(doc.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, repository.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("FindByCredentials: %w", err)
	}
	return doc.toEntity(), nil
}
