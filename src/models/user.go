package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role of a user. Closed enum — every authorization decision matches against
// these two values, never a free-form string.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	}
	return false
}

// StudentStatus of an enrolled student. Empty means not set yet.
type StudentStatus string

const (
	StatusActive    StudentStatus = "Active"
	StatusGraduated StudentStatus = "Graduated"
	StatusDropped   StudentStatus = "Dropped"
)

func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusGraduated, StatusDropped:
		return true
	}
	return false
}

// User is the single persisted entity. The password hash never leaves the
// API, and the stored imageUrl field is exposed to clients under the
// profilePicture alias — one canonical field, renamed at the serialization
// layer.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role           Role               `bson:"role" json:"role"`
	PasswordHash   string             `bson:"passwordHash" json:"-"`
	ImageURL       string             `bson:"imageUrl,omitempty" json:"profilePicture,omitempty"`
	Course         string             `bson:"course,omitempty" json:"course,omitempty"`
	EnrollmentYear int                `bson:"enrollmentYear,omitempty" json:"enrollmentYear,omitempty"`
	Status         StudentStatus      `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest - payload for self-registration. Role is always student.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest - credentials for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateStudentRequest - admin-supplied profile for a new student. The server
// assigns the default password and forces role=student.
type CreateStudentRequest struct {
	FullName       string        `json:"fullName" validate:"required"`
	Email          string        `json:"email" validate:"required,email"`
	Phone          string        `json:"phone"`
	Course         string        `json:"course"`
	EnrollmentYear int           `json:"enrollmentYear"`
	Status         StudentStatus `json:"status" validate:"omitempty,oneof=Active Graduated Dropped"`
}

// UpdateUserRequest - partial update. Nil fields are left untouched. Both
// profilePicture and imageUrl are accepted and write the same stored field.
type UpdateUserRequest struct {
	FullName       *string        `json:"fullName" validate:"omitempty,min=1"`
	Email          *string        `json:"email" validate:"omitempty,email"`
	Phone          *string        `json:"phone"`
	Course         *string        `json:"course"`
	EnrollmentYear *int           `json:"enrollmentYear"`
	Status         *StudentStatus `json:"status" validate:"omitempty,oneof=Active Graduated Dropped"`
	ProfilePicture *string        `json:"profilePicture"`
	ImageURL       *string        `json:"imageUrl"`
}

// ToUpdate builds the $set document for the fields that were provided.
func (r *UpdateUserRequest) ToUpdate() bson.M {
	set := bson.M{}
	if r.FullName != nil {
		set["fullName"] = *r.FullName
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	if r.Phone != nil {
		set["phone"] = *r.Phone
	}
	if r.Course != nil {
		set["course"] = *r.Course
	}
	if r.EnrollmentYear != nil {
		set["enrollmentYear"] = *r.EnrollmentYear
	}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	// profilePicture is the public alias of imageUrl; when both arrive the
	// alias wins.
	if r.ImageURL != nil {
		set["imageUrl"] = *r.ImageURL
	}
	if r.ProfilePicture != nil {
		set["imageUrl"] = *r.ProfilePicture
	}
	return set
}

// ChangeRoleRequest - target role for PATCH /api/admin/users/:id/role.
type ChangeRoleRequest struct {
	Role Role `json:"role" validate:"required"`
}

// StudentStats - aggregate counters for the admin dashboard.
type StudentStats struct {
	TotalStudents     int64 `json:"totalStudents"`
	ActiveStudents    int64 `json:"activeStudents"`
	GraduatedStudents int64 `json:"graduatedStudents"`
}
