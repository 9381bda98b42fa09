package auth

import (
	"context"
	"strings"
	"time"

	"Backend-StudentHub/src/database"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/services/apperrors"
	"Backend-StudentHub/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles registration and credential checks.
type Service struct {
	users *mongo.Collection
}

func NewService(db *database.Mongo) *Service {
	return &Service{users: db.Users}
}

// Register creates a new student account. The email must be unused; the
// unique index backs up the pre-check under concurrent registrations.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		FullName:     req.FullName,
		Email:        email,
		Phone:        req.Phone,
		Role:         models.RoleStudent,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

// Login looks the user up by email and verifies the password. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}
