package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/utils"
)

const venueCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ApprovalService governs the admission of employee accounts into a
// registered restaurant: owner signup, employee signup against a venue
// code, and the owner approval that activates the account, updates chat
// membership and fans out notifications.
type ApprovalService struct {
	DB *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{DB: db}
}

type OwnerSignup struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	RestaurantName  string
	PhoneNumber     string
}

type EmployeeSignup struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	VenueCode       string
	PhoneNumber     string
}

// RegisterOwner creates the restaurant, its owner account and the
// restaurant's chat room with the owner as sole initial member, all in
// one transaction so a half-created restaurant cannot be left behind.
func (s *ApprovalService) RegisterOwner(in OwnerSignup) (*models.User, error) {
	if err := validateSignup(in.FirstName, in.LastName, in.Email, in.Password, in.ConfirmPassword, in.PhoneNumber); err != nil {
		return nil, err
	}
	if in.RestaurantName == "" {
		return nil, validationError("all fields are required")
	}
	if err := s.checkEmailFree(in.Email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var owner models.User
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		code, err := s.newVenueCode(tx)
		if err != nil {
			return err
		}

		restaurant := models.Restaurant{
			Name:        in.RestaurantName,
			VenueCode:   code,
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
			Status:      models.StatusActive,
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}

		owner = models.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			Password:     string(hashed),
			PhoneNumber:  in.PhoneNumber,
			Role:         models.RoleOwner,
			Status:       models.StatusActive,
			RestaurantID: &restaurant.ID,
			VenueCode:    code,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		room := models.ChatRoom{
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		return tx.Model(&room).Association("Members").Append(&owner)
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New restaurant registered: %s (venue=%s, owner=%s)",
		in.RestaurantName, owner.VenueCode, owner.Email)
	return &owner, nil
}

// VerifyVenue resolves a venue code to its restaurant. Read-only.
func (s *ApprovalService) VerifyVenue(code string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.DB.Where("venue_code = ?", code).First(&restaurant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// RegisterEmployee creates a pending account tied to the restaurant the
// venue code resolves to, and notifies the owner. A restaurant without
// an owner record is an invariant violation and fails the request.
func (s *ApprovalService) RegisterEmployee(in EmployeeSignup) (*models.User, *models.Restaurant, error) {
	if err := validateSignup(in.FirstName, in.LastName, in.Email, in.Password, in.ConfirmPassword, in.PhoneNumber); err != nil {
		return nil, nil, err
	}
	if in.VenueCode == "" {
		return nil, nil, validationError("all fields are required")
	}
	if err := s.checkEmailFree(in.Email); err != nil {
		return nil, nil, err
	}

	restaurant, err := s.VerifyVenue(in.VenueCode)
	if err != nil {
		return nil, nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	var employee models.User
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		employee = models.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			Password:     string(hashed),
			PhoneNumber:  in.PhoneNumber,
			Role:         models.RoleEmployee,
			Status:       models.StatusPending,
			RestaurantID: &restaurant.ID,
			VenueCode:    restaurant.VenueCode,
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		var owner models.User
		if err := tx.Where("restaurant_id = ? AND role = ?", restaurant.ID, models.RoleOwner).
			First(&owner).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("restaurant %d has no owner", restaurant.ID)
			}
			return err
		}

		notif := models.Notification{
			UserID:        owner.ID,
			Type:          models.NotifApprovalRequest,
			Message:       fmt.Sprintf("%s has requested to join your restaurant", employee.FullName()),
			EmployeeEmail: &employee.Email,
		}
		return tx.Create(&notif).Error
	})
	if err != nil {
		return nil, nil, err
	}

	utils.InfoLogger.Printf("Employee signup pending approval: %s -> %s", employee.Email, restaurant.Name)
	return &employee, restaurant, nil
}

// ApproveEmployee flips a pending employee of the owner's restaurant to
// active, adds them to the restaurant's chat room and notifies them.
// The whole sequence runs in one transaction; the membership append is
// a no-op for an already-present member, so approving twice cannot
// duplicate the chat membership.
func (s *ApprovalService) ApproveEmployee(restaurantID uint, employeeEmail string) (*models.User, error) {
	var employee models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ? AND restaurant_id = ?", employeeEmail, restaurantID).
			First(&employee).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrEmployeeNotFound
			}
			return err
		}

		now := time.Now()
		employee.Status = models.StatusActive
		employee.ApprovedAt = &now
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}

		var room models.ChatRoom
		if err := tx.Where("restaurant_id = ?", restaurantID).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRoomNotFound
			}
			return err
		}
		if err := tx.Model(&room).Association("Members").Append(&employee); err != nil {
			return err
		}

		notif := models.Notification{
			UserID:  employee.ID,
			Type:    models.NotifApprovalGranted,
			Message: "Your account has been approved!",
		}
		return tx.Create(&notif).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Employee approved: %s (restaurant=%d)", employee.Email, restaurantID)
	return &employee, nil
}

// ListPendingEmployees returns the restaurant's accounts still waiting
// for approval.
func (s *ApprovalService) ListPendingEmployees(restaurantID uint) ([]models.User, error) {
	var pending []models.User
	err := s.DB.Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusPending).
		Order("created_at").Find(&pending).Error
	return pending, err
}

// Authenticate verifies credentials against the account state machine:
// pending employees and deactivated accounts are rejected before the
// hash comparison; everything else fails generically.
func (s *ApprovalService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Role == models.RoleEmployee && user.Status == models.StatusPending {
		return nil, ErrPendingApproval
	}
	if user.Status == models.StatusInactive {
		return nil, ErrDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *ApprovalService) checkEmailFree(email string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailExists
	}
	return nil
}

// newVenueCode draws a 6-character code and retries on collision; the
// unique index on restaurants.venue_code is the final guard. After a
// handful of collisions (vanishingly unlikely at 36^6) it falls back to
// a longer code.
func (s *ApprovalService) newVenueCode(tx *gorm.DB) (string, error) {
	for i := 0; i < 5; i++ {
		code, err := randomVenueCode(6)
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&models.Restaurant{}).Where("venue_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
		utils.InfoLogger.Printf("Venue code collision on %s, retrying", code)
	}
	return randomVenueCode(8)
}

func randomVenueCode(length int) (string, error) {
	// Bytes at or above the largest multiple of the alphabet size are
	// rejected so every symbol is drawn with equal probability.
	limit := byte(256 - 256%len(venueCodeAlphabet))
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, venueCodeAlphabet[int(b)%len(venueCodeAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

func validateSignup(firstName, lastName, email, password, confirm, phone string) error {
	if firstName == "" || lastName == "" || email == "" || password == "" || phone == "" {
		return validationError("all fields are required")
	}
	if password != confirm {
		return validationError("passwords do not match")
	}
	if len(password) < 8 {
		return validationError("password must be at least 8 characters long")
	}
	return nil
}
