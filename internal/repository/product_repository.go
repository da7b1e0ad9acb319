package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"product-inventory/internal/models"
)

const defaultTimeout = 5 * time.Second

type ProductRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

var _ Store = (*ProductRepository)(nil)

func NewProductRepository(collection *mongo.Collection, timeout time.Duration) *ProductRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ProductRepository{
		collection: collection,
		timeout:    timeout,
	}
}

// Find lista todos los productos ordenados por fecha de creación descendente
func (r *ProductRepository) Find(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

// Create inserta un producto nuevo con id y timestamps asignados por el store
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := checkProduct(product); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Mongo guarda milisegundos; truncar para que lo devuelto coincida con lo leído
	now := time.Now().UTC().Truncate(time.Millisecond)
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByIDAndUpdate aplica un $set parcial y devuelve el documento previo
func (r *ProductRepository) FindByIDAndUpdate(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := checkUpdate(update); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var prior models.Product
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, updatePipeline(update, time.Now().UTC()), opts).Decode(&prior)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &prior, nil
}

// FindByIDAndDelete borra físicamente el producto
func (r *ProductRepository) FindByIDAndDelete(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var removed models.Product
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &removed, nil
}

// updatePipeline arma la actualización como pipeline para que updatedAt
// avance siempre al menos 1ms respecto del valor guardado.
func updatePipeline(update models.ProductUpdate, now time.Time) mongo.Pipeline {
	set := bson.D{}
	// $literal evita que un string que empiece con "$" se lea como ruta de campo
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: bson.M{"$literal": *update.Name}})
	}
	if update.Price != nil {
		set = append(set, bson.E{Key: "price", Value: bson.M{"$literal": *update.Price}})
	}
	if update.Quantity != nil {
		set = append(set, bson.E{Key: "quantity", Value: bson.M{"$literal": *update.Quantity}})
	}
	if update.Image != nil {
		set = append(set, bson.E{Key: "Image", Value: bson.M{"$literal": *update.Image}})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: bson.M{
		"$max": bson.A{now, bson.M{"$add": bson.A{"$updatedAt", 1}}},
	}})

	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}
