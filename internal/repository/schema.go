package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// código de error de Mongo para colección inexistente
const namespaceNotFound = 26

// ProductSchema es el validador $jsonSchema de la colección de productos
func ProductSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "price", "quantity"},
			"properties": bson.M{
				"name":      bson.M{"bsonType": "string", "minLength": 1},
				"price":     bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"quantity":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"Image":     bson.M{"bsonType": "string"},
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
			},
		},
	}
}

// EnsureSchema instala el validador en la colección (creándola si no existe)
// y el índice usado por el listado.
func EnsureSchema(ctx context.Context, db *mongo.Database, collection string) error {
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: collection},
		{Key: "validator", Value: ProductSchema()},
	}).Err()

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.HasErrorCode(namespaceNotFound) {
		err = db.CreateCollection(ctx, collection, options.CreateCollection().SetValidator(ProductSchema()))
	}
	if err != nil {
		return fmt.Errorf("apply validator to %s: %w", collection, err)
	}

	_, err = db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return fmt.Errorf("create index on %s: %w", collection, err)
	}
	return nil
}
