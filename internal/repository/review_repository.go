package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-core/internal/models"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(collection *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{
		collection: collection,
	}
}

// Create crea una reseña nueva. Las reseñas nunca se mutan después.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, review)
	return err
}

// ListByProduct devuelve las reseñas de un producto en orden de publicación.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// ListGroupedByProduct trae todas las reseñas agrupadas por producto, para
// calcular los ratings agregados del listado en una sola query.
func (r *ReviewRepository) ListGroupedByProduct(ctx context.Context) (map[string][]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	grouped := make(map[string][]models.Review)
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, err
		}
		grouped[review.ProductID] = append(grouped[review.ProductID], review)
	}

	return grouped, cursor.Err()
}

// DeleteByAuthor borra una reseña solo si el reviewer indicado es su autor.
func (r *ReviewRepository) DeleteByAuthor(ctx context.Context, id, reviewer string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":      id,
		"reviewer": reviewer,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("review not found")
	}

	return nil
}
