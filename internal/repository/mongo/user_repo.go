package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

type userRepo struct {
	coll *mongodriver.Collection
}

// NewUserRepo creates a new MongoDB-backed UserRepository.
func NewUserRepo(c *Client) port.UserRepository {
	return &userRepo{coll: c.db.Collection(usersCollection)}
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"uid": user.UID},
		bson.M{"$set": bson.M{"uid": user.UID, "email": user.Email, "updated_at": user.UpdatedAt}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("userRepo.Upsert: %w", err)
	}
	return nil
}
