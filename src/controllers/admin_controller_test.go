package controllers

import (
	"net/http"
	"testing"

	"Backend-StudentHub/src/middleware"
	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/services/apperrors"
	"Backend-StudentHub/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminApp(students StudentService, profiles ProfileService, store UploadStore, tm *utils.TokenManager) *fiber.App {
	adc := NewAdminController(students, profiles, store, validator.New())

	app := fiber.New()
	admin := app.Group("/api/admin", middleware.AuthJWT(tm, models.RoleAdmin))
	admin.Get("/students/stats", adc.GetStudentStats)
	admin.Get("/students", adc.ListStudents)
	admin.Post("/students", adc.CreateStudent)
	admin.Put("/students/:id", adc.UpdateStudent)
	admin.Delete("/students/:id", adc.DeleteStudent)
	admin.Patch("/users/:id/role", adc.ChangeRole)
	admin.Post("/users/:id/profile-picture", adc.UploadUserPicture)
	return app
}

func TestAdminRoutesForbidStudents(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	req := jsonRequest(t, http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleStudent))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	students.AssertNotCalled(t, "List")
}

func TestListStudents(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	students.On("List", mock.Anything).Return([]models.User{
		{ID: primitive.NewObjectID(), FullName: "Alice", Role: models.RoleStudent},
		{ID: primitive.NewObjectID(), FullName: "Hope", Role: models.RoleStudent},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateStudentForcesDefaults(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	created := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Alice Uwimana",
		Email:    "alice@gmail.com",
		Role:     models.RoleStudent,
		Status:   models.StatusActive,
	}
	students.On("Create", mock.Anything, mock.MatchedBy(func(req models.CreateStudentRequest) bool {
		return req.Email == "alice@gmail.com" && req.Status == models.StatusActive
	})).Return(created, nil)

	req := jsonRequest(t, http.MethodPost, "/api/admin/students", models.CreateStudentRequest{
		FullName: "Alice Uwimana",
		Email:    "alice@gmail.com",
		Course:   "Software Engineering",
		Status:   models.StatusActive,
	})
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "student", body["role"])
	assert.NotContains(t, body, "passwordHash")
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	students.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrEmailTaken)

	req := jsonRequest(t, http.MethodPost, "/api/admin/students", models.CreateStudentRequest{
		FullName: "Alice Uwimana",
		Email:    "alice@gmail.com",
	})
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", decodeBody(t, resp)["message"])
}

func TestUpdateStudentErrors(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)
	adminAuth := bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin)

	students.On("Update", mock.Anything, "bad-id", mock.Anything).Return(nil, apperrors.ErrInvalidID)
	students.On("Update", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1", mock.Anything).Return(nil, apperrors.ErrNotFound)

	t.Run("InvalidID", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/admin/students/bad-id", map[string]string{"course": "Math"})
		req.Header.Set("Authorization", adminAuth)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/admin/students/64f1b2c3d4e5f6a7b8c9d0e1", map[string]string{"course": "Math"})
		req.Header.Set("Authorization", adminAuth)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteStudentNotFound(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	students.On("Delete", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1").Return(apperrors.ErrNotFound)

	req := jsonRequest(t, http.MethodDelete, "/api/admin/students/64f1b2c3d4e5f6a7b8c9d0e1", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Student not found", decodeBody(t, resp)["message"])
}

func TestChangeRoleGuards(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	callerID := primitive.NewObjectID().Hex()
	adminAuth := bearerFor(t, tm, callerID, models.RoleAdmin)

	patch := func(target string, body interface{}) *http.Response {
		req := jsonRequest(t, http.MethodPatch, "/api/admin/users/"+target+"/role", body)
		req.Header.Set("Authorization", adminAuth)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		return resp
	}

	t.Run("InvalidRoleValue", func(t *testing.T) {
		resp := patch("64f1b2c3d4e5f6a7b8c9d0e1", map[string]string{"role": "superuser"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid role value", decodeBody(t, resp)["message"])
		students.AssertNotCalled(t, "ChangeRole")
	})

	t.Run("SelfDemotion", func(t *testing.T) {
		students.On("ChangeRole", mock.Anything, callerID, callerID, models.RoleStudent).
			Return(nil, apperrors.ErrSelfDemotion).Once()
		resp := patch(callerID, models.ChangeRoleRequest{Role: models.RoleStudent})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "You cannot remove your own admin role.", decodeBody(t, resp)["message"])
	})

	t.Run("LastAdmin", func(t *testing.T) {
		target := primitive.NewObjectID().Hex()
		students.On("ChangeRole", mock.Anything, callerID, target, models.RoleStudent).
			Return(nil, apperrors.ErrLastAdmin).Once()
		resp := patch(target, models.ChangeRoleRequest{Role: models.RoleStudent})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Cannot demote the last remaining admin.", decodeBody(t, resp)["message"])
	})

	t.Run("Promotion", func(t *testing.T) {
		target := primitive.NewObjectID()
		promoted := &models.User{ID: target, FullName: "Hope", Role: models.RoleAdmin}
		students.On("ChangeRole", mock.Anything, callerID, target.Hex(), models.RoleAdmin).
			Return(promoted, nil).Once()
		resp := patch(target.Hex(), models.ChangeRoleRequest{Role: models.RoleAdmin})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Role updated", body["message"])
		assert.Equal(t, "admin", body["user"].(map[string]interface{})["role"])
	})
}

func TestUploadUserPictureNotFound(t *testing.T) {
	students := new(mockStudentService)
	profiles := new(mockProfileService)
	store := new(mockUploadStore)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, profiles, store, tm)

	store.On("Save", mock.Anything).Return("/uploads/new.png", nil)
	profiles.On("SetProfileImage", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1", "/uploads/new.png").
		Return(nil, "", apperrors.ErrNotFound)

	req := jsonRequest(t, http.MethodPost, "/api/admin/users/64f1b2c3d4e5f6a7b8c9d0e1/profile-picture", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	store.AssertNotCalled(t, "ScheduleCleanup")
}

func TestStudentStats(t *testing.T) {
	students := new(mockStudentService)
	tm := utils.NewTokenManager("secret")
	app := newAdminApp(students, new(mockProfileService), new(mockUploadStore), tm)

	students.On("Stats", mock.Anything).Return(&models.StudentStats{
		TotalStudents:     1,
		ActiveStudents:    0,
		GraduatedStudents: 0,
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/api/admin/students/stats", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, primitive.NewObjectID().Hex(), models.RoleAdmin))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 1, body["totalStudents"])
	assert.EqualValues(t, 0, body["activeStudents"])
	assert.EqualValues(t, 0, body["graduatedStudents"])
}
