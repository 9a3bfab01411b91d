package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

const collectionBills = "bills"

type Repository struct {
	bills *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		bills: db.Collection(collectionBills),
	}
}

type billDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID string             `bson:"customer_id"`
	Total      float64            `bson:"total"`
	CreatedAt  *time.Time         `bson:"created_at,omitempty"`
	Items      []entity.Item      `bson:"items"`
}

func (r *Repository) Bills(ctx context.Context, filter entity.BillFilter) ([]entity.Bill, error) {
	cur, err := r.bills.Find(ctx, billsFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	defer cur.Close(ctx)

	bills := make([]entity.Bill, 0)

	for cur.Next(ctx) {
		var doc billDocument

		err = cur.Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}

		bills = append(bills, doc.toEntity())
	}

	err = cur.Err()
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return bills, nil
}

func billsFilter(f entity.BillFilter) bson.M {
	filter := bson.M{}

	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}

	createdAt := bson.M{}

	if f.From != nil {
		createdAt["$gte"] = *f.From
	}

	if f.To != nil {
		createdAt["$lt"] = *f.To
	}

	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}

	return filter
}

func (r *Repository) CreateBill(ctx context.Context, bill entity.Bill) (entity.Bill, error) {
	doc := billDocument{
		ID:         primitive.NewObjectID(),
		CustomerID: bill.CustomerID,
		Total:      bill.Total,
		CreatedAt:  bill.CreatedAt,
		Items:      bill.Items,
	}

	_, err := r.bills.InsertOne(ctx, doc)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("insert: %w", err)
	}

	return r.Bill(ctx, doc.ID.Hex())
}

func (r *Repository) Bill(ctx context.Context, id string) (entity.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.Bill{}, entity.ErrNotFound
	}

	var doc billDocument

	err = r.bills.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Bill{}, entity.ErrNotFound
		}

		return entity.Bill{}, fmt.Errorf("find one: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *Repository) UpdateBill(ctx context.Context, id string, patch entity.BillPatch) (entity.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.Bill{}, entity.ErrNotFound
	}

	set := bson.M{}

	if patch.CustomerID != nil {
		set["customer_id"] = *patch.CustomerID
	}

	if patch.Total != nil {
		set["total"] = *patch.Total
	}

	if patch.Items != nil {
		set["items"] = *patch.Items
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc billDocument

	err = r.bills.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Bill{}, entity.ErrNotFound
		}

		return entity.Bill{}, fmt.Errorf("find one and update: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *Repository) DeleteBill(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrNotFound
	}

	result, err := r.bills.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete one: %w", err)
	}

	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (d billDocument) toEntity() entity.Bill {
	items := d.Items
	if items == nil {
		items = []entity.Item{}
	}

	var createdAt *time.Time

	if d.CreatedAt != nil {
		t := d.CreatedAt.UTC()
		createdAt = &t
	}

	return entity.Bill{
		ID:         d.ID.Hex(),
		CustomerID: d.CustomerID,
		Total:      d.Total,
		CreatedAt:  createdAt,
		Items:      items,
	}
}
