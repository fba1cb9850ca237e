package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/venuehub/backend/controllers"
	"github.com/venuehub/backend/middlewares"
	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.ChatRoom{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.Customer{},
		&models.Post{},
		&models.Supplier{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupSignupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	approvalSvc := services.NewApprovalService(db)
	authCtrl := controllers.NewAuthController(approvalSvc)
	signupCtrl := controllers.NewSignupController(approvalSvc)

	r.POST("/login", authCtrl.Login)
	r.POST("/signup/owner", signupCtrl.RegisterOwner)
	r.POST("/signup/employee", signupCtrl.RegisterEmployee)
	r.POST("/verify-venue", signupCtrl.VerifyVenue)

	session := r.Group("/")
	session.Use(middlewares.SessionAuth())
	owner := session.Group("/")
	owner.Use(middlewares.RequireOwner())
	{
		owner.GET("/pending-employees", signupCtrl.PendingEmployees)
		owner.POST("/approve-employee/:email", signupCtrl.ApproveEmployee)
	}

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func ownerPayload(email string) map[string]string {
	return map[string]string{
		"firstName":       "Olive",
		"lastName":        "Owner",
		"email":           email,
		"password":        "password123",
		"confirmPassword": "password123",
		"restaurantName":  "Olive Garden",
		"phoneNumber":     "010-1234-5678",
	}
}

func TestSignupAndApprovalFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupSignupRouter(db)

	// Owner signs up and is redirected to login.
	w := postJSON(t, r, "/signup/owner", ownerPayload("olive@example.com"), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var restaurant models.Restaurant
	assert.NoError(t, db.First(&restaurant).Error)

	// Venue code resolves to the restaurant.
	w = postJSON(t, r, "/verify-venue", map[string]string{"venueCode": restaurant.VenueCode}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var verify map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &verify))
	assert.Equal(t, true, verify["success"])
	assert.Equal(t, "Olive Garden", verify["restaurantName"])

	// Unknown venue code is rejected.
	w = postJSON(t, r, "/verify-venue", map[string]string{"venueCode": "NOPE99"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Employee signs up against the venue code.
	w = postJSON(t, r, "/signup/employee", map[string]string{
		"firstName":       "Eddie",
		"lastName":        "Employee",
		"email":           "eddie@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"venueCode":       restaurant.VenueCode,
		"phoneNumber":     "010-8765-4321",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	// Pending employee cannot log in and gets no session.
	w = postJSON(t, r, "/login", map[string]string{
		"email": "eddie@example.com", "password": "password123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, utils.SessionCookie, c.Name)
	}

	// Owner logs in and gets a session cookie.
	w = postJSON(t, r, "/login", map[string]string{
		"email": "olive@example.com", "password": "password123",
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/list", w.Header().Get("Location"))
	cookie := sessionCookie(t, w)

	// Owner sees the pending employee.
	req, _ := http.NewRequest("GET", "/pending-employees", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eddie@example.com")

	// Owner approves; redirected back to the pending listing.
	w = postJSON(t, r, "/approve-employee/eddie@example.com", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/pending-employees", w.Header().Get("Location"))

	var employee models.User
	assert.NoError(t, db.Where("email = ?", "eddie@example.com").First(&employee).Error)
	assert.Equal(t, models.StatusActive, employee.Status)

	var notif models.Notification
	assert.NoError(t, db.Where("user_id = ? AND type = ?", employee.ID, models.NotifApprovalGranted).
		First(&notif).Error)

	// Approved employee can log in now.
	w = postJSON(t, r, "/login", map[string]string{
		"email": "eddie@example.com", "password": "password123",
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestApprovalRequiresOwnerRole(t *testing.T) {
	db := setupTestDB(t)
	r := setupSignupRouter(db)

	// No session at all.
	w := postJSON(t, r, "/approve-employee/ghost@example.com", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An approved employee is still not an owner.
	w = postJSON(t, r, "/signup/owner", ownerPayload("olive@example.com"), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var restaurant models.Restaurant
	assert.NoError(t, db.First(&restaurant).Error)
	postJSON(t, r, "/signup/employee", map[string]string{
		"firstName":       "Eddie",
		"lastName":        "Employee",
		"email":           "eddie@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
		"venueCode":       restaurant.VenueCode,
		"phoneNumber":     "010-8765-4321",
	}, nil)

	svc := services.NewApprovalService(db)
	_, err := svc.ApproveEmployee(restaurant.ID, "eddie@example.com")
	assert.NoError(t, err)

	w = postJSON(t, r, "/login", map[string]string{
		"email": "eddie@example.com", "password": "password123",
	}, nil)
	cookie := sessionCookie(t, w)

	w = postJSON(t, r, "/approve-employee/anyone@example.com", nil, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSignupValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	r := setupSignupRouter(db)

	payload := ownerPayload("olive@example.com")
	payload["confirmPassword"] = "different123"
	w := postJSON(t, r, "/signup/owner", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "do not match")

	w = postJSON(t, r, "/signup/owner", ownerPayload("olive@example.com"), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	// Duplicate email is a conflict-class failure.
	w = postJSON(t, r, "/signup/owner", ownerPayload("olive@example.com"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}
