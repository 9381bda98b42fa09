package seeder

import (
	"context"
	"log"
	"time"

	"Backend-StudentHub/src/database"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Bootstrap credentials. The admin is created whenever no admin exists so the
// at-least-one-admin invariant holds from the first boot.
const (
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "Admin@0000"
)

// EnsureDefaultAdmin creates the bootstrap admin if the collection holds no
// admin at all.
func EnsureDefaultAdmin(ctx context.Context, db *database.Mongo) error {
	count, err := db.Users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.User{
		FullName:     "Admin User",
		Email:        defaultAdminEmail,
		Phone:        "0788000000",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.Users.InsertOne(ctx, &admin); err != nil {
		return err
	}

	log.Println("✅ Default admin created:", defaultAdminEmail)
	return nil
}

// SeedSampleStudents inserts a couple of demo students, skipping any email
// that already exists. Intended for development databases only.
func SeedSampleStudents(ctx context.Context, db *database.Mongo) error {
	samples := []struct {
		fullName string
		email    string
		phone    string
		password string
		course   string
		year     int
		status   models.StudentStatus
	}{
		{"Alice Uwimana", "alice@gmail.com", "0788123456", "alice@0000", "Software Engineering", 2023, models.StatusActive},
		{"Hope Nishimwe", "hope@gmail.com", "0788234567", "hope@0000", "Data Science", 2022, models.StatusGraduated},
	}

	for _, s := range samples {
		count, err := db.Users.CountDocuments(ctx, bson.M{"email": s.email})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := utils.HashPassword(s.password)
		if err != nil {
			return err
		}

		now := time.Now()
		student := models.User{
			FullName:       s.fullName,
			Email:          s.email,
			Phone:          s.phone,
			Role:           models.RoleStudent,
			PasswordHash:   hash,
			Course:         s.course,
			EnrollmentYear: s.year,
			Status:         s.status,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if _, err := db.Users.InsertOne(ctx, &student); err != nil {
			return err
		}
		log.Println("✅ Sample student created:", s.email)
	}

	return nil
}
