package users

import (
	"context"
	"time"

	"Backend-StudentHub/src/database"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/services/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service covers the self-service profile operations plus the profile-picture
// binding shared with the admin routes.
type Service struct {
	users *mongo.Collection
}

func NewService(db *database.Mongo) *Service {
	return &Service{users: db.Users}
}

// GetByID returns a single user record.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies a partial update to a user record.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateUserRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	set := req.ToUpdate()
	if len(set) == 0 {
		return nil // nothing to change, idempotent no-op
	}
	set["updatedAt"] = time.Now()

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// SetProfileImage points the user's stored imageUrl at the freshly uploaded
// path and returns the updated record together with the path it replaced, so
// the caller can schedule cleanup of the orphaned file.
func (s *Service) SetProfileImage(ctx context.Context, id, publicPath string) (*models.User, string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, "", apperrors.ErrInvalidID
	}

	var previous models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&previous)
	if err == mongo.ErrNoDocuments {
		return nil, "", apperrors.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	update := bson.M{"$set": bson.M{"imageUrl": publicPath, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, "", apperrors.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	return &updated, previous.ImageURL, nil
}
