package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

const productsCollection = "products"

// productDocument is the store-side shape of a product. Conversion happens at
// this boundary so the rest of the system only sees domain.Product.
type productDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Price       float64       `bson:"price"`
}

func (d productDocument) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &ProductRepository{collection: db.Collection(productsCollection)}
}

// List returns all products ordered by _id ascending, which corresponds to
// insertion order for store-assigned identifiers.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].toDomain()
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	if err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := doc.toDomain()
	return &product, nil
}

func (r *ProductRepository) Insert(ctx context.Context, fields domain.ProductFields) (string, error) {
	doc := productDocument{
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// Replace overwrites all editable fields of an existing product. It never
// creates a document for an unknown id.
func (r *ProductRepository) Replace(ctx context.Context, id string, fields domain.ProductFields) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: fields.Name},
		{Key: "description", Value: fields.Description},
		{Key: "price", Value: fields.Price},
	}}}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return result.DeletedCount, nil
}

// parseObjectID maps malformed identifier hex to ErrNotFound so invalid and
// absent ids are indistinguishable to callers.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, repository.ErrNotFound
	}
	return oid, nil
}
