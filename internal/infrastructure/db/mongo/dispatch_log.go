package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

const collectionDispatches = "email_dispatches"

// DispatchLog implements ports.DispatchLog as an append-only audit collection.
type DispatchLog struct {
	col *mongo.Collection
}

func NewDispatchLog(db *mongo.Database) *DispatchLog {
	return &DispatchLog{col: db.Collection(collectionDispatches)}
}

type dispatchDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Destination string             `bson:"destination"`
	Subject     string             `bson:"subject"`
	Products    int                `bson:"products"`
	Success     bool               `bson:"success"`
	Error       string             `bson:"error,omitempty"`
	SentAt      time.Time          `bson:"sent_at"`
}

// Record persists one email attempt.
func (l *DispatchLog) Record(ctx context.Context, d ports.EmailDispatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := dispatchDoc{
		Destination: d.Destination,
		Subject:     d.Subject,
		Products:    d.Products,
		Success:     d.Success,
		Error:       d.Error,
		SentAt:      d.SentAt.UTC(),
	}
	if _, err := l.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert email dispatch: %w", err)
	}
	return nil
}

// Recent returns the latest attempts, newest first. An empty destination
// returns attempts for every address.
func (l *DispatchLog) Recent(ctx context.Context, destination string, limit int64) ([]ports.EmailDispatch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if destination != "" {
		filter["destination"] = destination
	}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}}).SetLimit(limit)

	cur, err := l.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find email dispatches: %w", err)
	}
	defer cur.Close(ctx)

	var docs []dispatchDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode email dispatches: %w", err)
	}

	out := make([]ports.EmailDispatch, 0, len(docs))
	for _, d := range docs {
		out = append(out, ports.EmailDispatch{
			Destination: d.Destination,
			Subject:     d.Subject,
			Products:    d.Products,
			Success:     d.Success,
			Error:       d.Error,
			SentAt:      d.SentAt.UTC(),
		})
	}
	return out, nil
}

// EnsureIndexes creates the indexes used by Recent.
func (l *DispatchLog) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sent_at", Value: -1}}},
		{Keys: bson.D{{Key: "destination", Value: 1}, {Key: "sent_at", Value: -1}}},
	}
	_, err := l.col.Indexes().CreateMany(ctx, indexes)
	return err
}
