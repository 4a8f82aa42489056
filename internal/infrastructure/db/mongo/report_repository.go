package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/billigi/lending-api/internal/core/domain"
)

// The collection name matches the one existing deployments already hold.
const collectionReports = "lostfounds"

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection(collectionReports)}
}

type mongoReport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Date        time.Time          `bson:"date"`
	Finder      string             `bson:"finder,omitempty"`
	Loser       string             `bson:"loser,omitempty"`
}

func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	var docs []mongoReport
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	reports := make([]*domain.Report, 0, len(docs))
	for _, d := range docs {
		reports = append(reports, d.toDomain())
	}
	return reports, nil
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReport{
		Title:       rep.Title,
		Description: rep.Description,
		Status:      string(rep.Status),
		Date:        rep.Date.UTC(),
		Finder:      rep.Finder,
		Loser:       rep.Loser,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoReport
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (d mongoReport) toDomain() *domain.Report {
	return &domain.Report{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.ReportStatus(d.Status),
		Date:        d.Date.UTC(),
		Finder:      d.Finder,
		Loser:       d.Loser,
	}
}
