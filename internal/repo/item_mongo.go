package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// itemDocument — представление Item в коллекции MongoDB.
type itemDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  *string            `bson:"name,omitempty"`
	Stock *float64           `bson:"stock,omitempty"`
}

func (d itemDocument) toModel() model.Item {
	return model.Item{ID: d.ID.Hex(), Name: d.Name, Stock: d.Stock}
}

type mongoItemRepo struct {
	coll *mongo.Collection
}

// NewMongoItemRepository создаёт реализацию репозитория поверх коллекции MongoDB.
func NewMongoItemRepository(coll *mongo.Collection) ItemRepository {
	return &mongoItemRepo{coll: coll}
}

func (r *mongoItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]model.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *mongoItemRepo) Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	doc := itemDocument{ID: primitive.NewObjectID(), Name: patch.Name, Stock: patch.Stock}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	it := doc.toModel()
	return &it, nil
}

func (r *mongoItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var doc itemDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	it := doc.toModel()
	return &it, nil
}

func (r *mongoItemRepo) UpdateByID(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	var doc itemDocument
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch.Updates()}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	it := doc.toModel()
	return &it, nil
}

func (r *mongoItemRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}
