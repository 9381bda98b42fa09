package students

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultStudentPassword is assigned to every admin-created student account.
const DefaultStudentPassword = "Student@123"

// Service implements the admin-side student management operations.
type Service struct {
	users *mongo.Collection
}

func NewService(db *database.Mongo) *Service {
	return &Service{users: db.Users}
}

// List returns every user with role=student.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": models.RoleStudent})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.User{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	return students, nil
}

// Create inserts a student account with the default password. Role is forced
// to student regardless of the payload.
func (s *Service) Create(ctx context.Context, req models.CreateStudentRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := utils.HashPassword(DefaultStudentPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student := &models.User{
		FullName:       req.FullName,
		Email:          email,
		Phone:          req.Phone,
		Role:           models.RoleStudent,
		PasswordHash:   hash,
		Course:         req.Course,
		EnrollmentYear: req.EnrollmentYear,
		Status:         req.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := s.users.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	student.ID = result.InsertedID.(primitive.ObjectID)
	return student, nil
}

// Update applies a partial update to a student record and returns the
// updated document.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	set := req.ToUpdate()
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	return &updated, nil
}

// Delete removes a student record permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	result, err := s.users.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ChangeRole switches a user between admin and student. Self-demotion is
// rejected outright, and demoting the last remaining admin is rejected both
// before and after the write: the post-write recount narrows the window in
// which two concurrent demotions could leave zero admins.
func (s *Service) ChangeRole(ctx context.Context, callerID, id string, role models.Role) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	var target models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&target)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if callerID == target.ID.Hex() && role != models.RoleAdmin {
		return nil, apperrors.ErrSelfDemotion
	}

	demotion := target.Role == models.RoleAdmin && role == models.RoleStudent
	if demotion {
		adminCount, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
		if err != nil {
			return nil, err
		}
		if adminCount <= 1 {
			return nil, apperrors.ErrLastAdmin
		}
	}

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if demotion {
		// recount after the write; restore the role if a concurrent demotion
		// drained the admin pool
		adminCount, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
		if err == nil && adminCount == 0 {
			restore := bson.M{"$set": bson.M{"role": models.RoleAdmin, "updatedAt": time.Now()}}
			_, _ = s.users.UpdateOne(ctx, bson.M{"_id": objID}, restore)
			return nil, apperrors.ErrLastAdmin
		}
	}

	return &updated, nil
}

// Stats returns the aggregate counters for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (*models.StudentStats, error) {
	total, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleStudent})
	if err != nil {
		return nil, err
	}
	active, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleStudent, "status": models.StatusActive})
	if err != nil {
		return nil, err
	}
	graduated, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleStudent, "status": models.StatusGraduated})
	if err != nil {
		return nil, err
	}

	return &models.StudentStats{
		TotalStudents:     total,
		ActiveStudents:    active,
		GraduatedStudents: graduated,
	}, nil
}
