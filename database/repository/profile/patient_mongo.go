package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPatientRepo is the production PatientRepository backed by MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

func NewMongoPatientRepo() *MongoPatientRepo {
	repo := &MongoPatientRepo{coll: database.Collection("patients")}
	repo.ensureIndexes()
	return repo
}

func (repo *MongoPatientRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("patient repo: failed to ensure indexes: %v", err)
	}
}

func (repo *MongoPatientRepo) Create(ctx context.Context, p *models.PatientProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("error creating patient: %w", err)
	}
	return nil
}

func (repo *MongoPatientRepo) GetByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.PatientProfile
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching patient %s: %w", id, err)
	}
	return &p, nil
}

func (repo *MongoPatientRepo) GetByEmail(ctx context.Context, email string) (*models.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.PatientProfile
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching patient by email: %w", err)
	}
	return &p, nil
}

func (repo *MongoPatientRepo) SetFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcm_token": token}})
	if err != nil {
		return fmt.Errorf("error updating patient fcm token: %w", err)
	}
	return nil
}
