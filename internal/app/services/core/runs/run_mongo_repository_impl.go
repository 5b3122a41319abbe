package runs

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RunMongoRepository struct {
	Collection *mongo.Collection
}

func NewRunMongoRepository(db *mongo.Database) contracts.RunRepository {
	return &RunMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionWorkflowRuns),
	}
}

func (r *RunMongoRepository) Create(ctx context.Context, run *models.Run) error {
	_, err := r.Collection.InsertOne(ctx, run)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// Update replaces the stored run, inserting it when Create never happened.
func (r *RunMongoRepository) Update(ctx context.Context, run *models.Run) error {
	run.Touch()
	filter := bson.M{"_id": run.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, run, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RunMongoRepository) FindByID(ctx context.Context, runID string) (*models.Run, error) {
	var run models.Run
	err := r.Collection.FindOne(ctx, bson.M{"_id": runID}).Decode(&run)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &run, nil
}

func (r *RunMongoRepository) FindRecent(ctx context.Context, limit int) ([]models.Run, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "startedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	runs := make([]models.Run, 0, limit)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return runs, nil
}
