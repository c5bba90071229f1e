package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clearview/jobtracker/internal/core/domain"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
// Every filter carries owner_id.
type JobRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs), seq: newSequence(db)}
}

// Create assigns j a fresh id and inserts it. A job created paid gets its
// invoice number in the same insert.
func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.Next(ctx, collectionJobs)
	if err != nil {
		return err
	}
	j.ID = id
	if j.Paid && j.InvoiceNumber == "" {
		j.InvoiceNumber = domain.InvoiceNumber(id)
	}

	if _, err := r.col.InsertOne(ctx, j); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, ownerID, id int64) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Job
	if err := r.col.FindOne(ctx, ownedBy(ownerID, id)).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

// List returns the owner's jobs, most recent job date first.
func (r *JobRepository) List(ctx context.Context, ownerID int64) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "job_date", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := []*domain.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

// Update replaces the mutable fields of the job matching j.ID and j.OwnerID.
// The customer link is fixed at creation and never rewritten.
func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"service":        j.Service,
		"job_date":       j.JobDate,
		"price":          j.Price,
		"notes":          j.Notes,
		"customer_name":  j.CustomerName,
		"address":        j.Address,
		"paid":           j.Paid,
		"invoice_number": j.InvoiceNumber,
		"updated_at":     j.UpdatedAt.UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, ownedBy(j.OwnerID, j.ID), update)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, ownerID, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, ownedBy(ownerID, id))
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MonthlyRevenue groups the owner's jobs by the YYYY-MM prefix of job_date and
// sums prices into paid and unpaid totals, oldest month first.
func (r *JobRepository) MonthlyRevenue(ctx context.Context, ownerID int64) ([]domain.RevenueMonth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, revenuePipeline(ownerID))
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}

	months := []domain.RevenueMonth{}
	if err := cur.All(ctx, &months); err != nil {
		return nil, fmt.Errorf("decode revenue: %w", err)
	}
	return months, nil
}

func revenuePipeline(ownerID int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":    bson.M{"$substrCP": bson.A{"$job_date", 0, 7}},
			"paid":   bson.M{"$sum": bson.M{"$cond": bson.A{"$paid", "$price", 0.0}}},
			"unpaid": bson.M{"$sum": bson.M{"$cond": bson.A{"$paid", 0.0, "$price"}}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// EnsureIndexes creates the owner index used by listing and aggregation.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "job_date", Value: -1}},
	})
	return err
}
