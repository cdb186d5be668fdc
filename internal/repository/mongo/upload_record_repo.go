package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

type uploadRecordRepo struct {
	coll *mongodriver.Collection
}

// NewUploadRecordRepo creates a new MongoDB-backed UploadRecordRepository.
func NewUploadRecordRepo(c *Client) port.UploadRecordRepository {
	return &uploadRecordRepo{coll: c.db.Collection(uploadRecordsCollection)}
}

func (r *uploadRecordRepo) Create(ctx context.Context, record *domain.UploadRecord) error {
	record.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("uploadRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRecordRepo) SearchByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error) {
	filter := bson.M{"email": EmailFilter(query)}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("uploadRecordRepo.SearchByEmail: %w", err)
	}

	records := []domain.UploadRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("uploadRecordRepo.SearchByEmail decode: %w", err)
	}
	return records, nil
}

// EmailFilter builds a case-insensitive regex that matches query literally.
func EmailFilter(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}
