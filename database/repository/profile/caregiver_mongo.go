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

// MongoCaregiverRepo is the production CaregiverRepository backed by MongoDB.
type MongoCaregiverRepo struct {
	coll *mongo.Collection
}

func NewMongoCaregiverRepo() *MongoCaregiverRepo {
	repo := &MongoCaregiverRepo{coll: database.Collection("caregivers")}
	repo.ensureIndexes()
	return repo
}

func (repo *MongoCaregiverRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("caregiver repo: failed to ensure indexes: %v", err)
	}
}

func (repo *MongoCaregiverRepo) Create(ctx context.Context, c *models.CaregiverProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("error creating caregiver: %w", err)
	}
	return nil
}

func (repo *MongoCaregiverRepo) GetByID(ctx context.Context, id string) (*models.CaregiverProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.CaregiverProfile
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching caregiver %s: %w", id, err)
	}
	return &c, nil
}

func (repo *MongoCaregiverRepo) GetByEmail(ctx context.Context, email string) (*models.CaregiverProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.CaregiverProfile
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching caregiver by email: %w", err)
	}
	return &c, nil
}

func (repo *MongoCaregiverRepo) SetFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcm_token": token}})
	if err != nil {
		return fmt.Errorf("error updating caregiver fcm token: %w", err)
	}
	return nil
}
