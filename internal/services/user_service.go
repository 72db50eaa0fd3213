package services

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"surfquest/server/internal/models"
)

// UserService handles registration and self-service profile management.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// RegisterInput is the public registration payload. Password is accepted in
// plaintext here only; it is hashed before the model ever touches the DB.
type RegisterInput struct {
	Username       string         `json:"username" binding:"required"`
	Password       string         `json:"password" binding:"required"`
	Email          *string        `json:"email"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Country        string         `json:"country"`
	State          string         `json:"state"`
	City           string         `json:"city"`
	ZipCode        string         `json:"zip_code"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	NearestAirport string         `json:"nearest_airport"`
	Bio            string         `json:"bio"`
	Preferences    datatypes.JSON `json:"preferences"`
	Budget         *float64       `json:"budget"`
}

// validatePassword applies the minimum credential policy: length and at
// least one non-numeric character.
func validatePassword(password string) error {
	if len(password) < 8 {
		return newValidationError("password", "must be at least 8 characters")
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return newValidationError("password", "must not be entirely numeric")
	}
	return nil
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(in *RegisterInput) (*models.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email == "" {
		in.Email = nil // empty string would trip the unique index
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:       in.Username,
		Password:       string(hash),
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Country:        in.Country,
		State:          in.State,
		City:           in.City,
		ZipCode:        in.ZipCode,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		NearestAirport: in.NearestAirport,
		Bio:            in.Bio,
		Preferences:    in.Preferences,
		Budget:         in.Budget,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, translateDBError(err)
	}
	return user, nil
}

// Authenticate checks a username/password pair and returns the user.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, translateDBError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrNotFound // indistinguishable from an unknown username
	}
	return &user, nil
}

// ListUsers returns all profiles ordered by username.
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}

// GetUserBySlug serves the public profile page lookup.
func (s *UserService) GetUserBySlug(slug string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "slug = ?", slug).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}

// UpdateInput is the self-service profile update payload. Nil fields are
// left untouched; a non-nil Password is re-validated and re-hashed.
type UpdateInput struct {
	Password       *string        `json:"password"`
	Email          *string        `json:"email"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	Country        *string        `json:"country"`
	State          *string        `json:"state"`
	City           *string        `json:"city"`
	ZipCode        *string        `json:"zip_code"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	NearestAirport *string        `json:"nearest_airport"`
	Avatar         *string        `json:"avatar"`
	Bio            *string        `json:"bio"`
	Preferences    datatypes.JSON `json:"preferences"`
	Budget         *float64       `json:"budget"`
}

// UpdateUser applies a partial update to the user's own profile. The slug is
// never regenerated, even if other fields change.
func (s *UserService) UpdateUser(id string, in *UpdateInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}

	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = string(hash)
	}
	if in.Email != nil {
		if *in.Email == "" {
			user.Email = nil
		} else {
			user.Email = in.Email
		}
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&user.FirstName, in.FirstName)
	setString(&user.LastName, in.LastName)
	setString(&user.Country, in.Country)
	setString(&user.State, in.State)
	setString(&user.City, in.City)
	setString(&user.ZipCode, in.ZipCode)
	setString(&user.NearestAirport, in.NearestAirport)
	setString(&user.Avatar, in.Avatar)
	setString(&user.Bio, in.Bio)
	if in.Latitude != nil {
		user.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		user.Longitude = in.Longitude
	}
	if in.Preferences != nil {
		user.Preferences = in.Preferences
	}
	if in.Budget != nil {
		user.Budget = in.Budget
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &user, nil
}

// DeleteUser removes the user's own account; reviews cascade.
func (s *UserService) DeleteUser(id string) error {
	result := s.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
