package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/billigi/lending-api/internal/core/domain"
)

const collectionItems = "items"

// ItemRepository implements ports.ItemRepository using MongoDB.
type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection(collectionItems)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Type        string             `bson:"type"`
	Status      string             `bson:"status"`
	Owner       string             `bson:"owner,omitempty"`
	Borrower    string             `bson:"borrower,omitempty"`
}

// List returns the whole collection in natural order.
func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	var docs []mongoItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]*domain.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, nil
}

// Create inserts a new item document.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoItem{
		Name:        item.Name,
		Description: item.Description,
		Type:        string(item.Type),
		Status:      string(item.Status),
		Owner:       item.Owner,
		Borrower:    item.Borrower,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoItem
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return doc.toDomain(), nil
}

// Claim sets status=borrowed and the given party field in a single
// conditional update guarded by status=available.
func (r *ItemRepository) Claim(ctx context.Context, id, field, name string) (*domain.Item, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if field != "owner" && field != "borrower" {
		return nil, fmt.Errorf("claim item: unknown party field %q", field)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.ItemAvailable)}
	update := bson.M{"$set": bson.M{
		"status": string(domain.ItemBorrowed),
		field:    name,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoItem
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("claim item: %w", err)
	}

	// Nothing matched: either the item is gone or someone claimed it first.
	n, cerr := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if cerr != nil {
		return nil, fmt.Errorf("claim item: %w", cerr)
	}
	if n == 0 {
		return nil, domain.ErrItemNotFound
	}
	return nil, domain.ErrItemNotAvailable
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (d mongoItem) toDomain() *domain.Item {
	return &domain.Item{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Type:        domain.ItemType(d.Type),
		Status:      domain.ItemStatus(d.Status),
		Owner:       d.Owner,
		Borrower:    d.Borrower,
	}
}
