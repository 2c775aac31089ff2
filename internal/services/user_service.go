package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/kisanlink/agrostock-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingUserFields = errors.New("please provide email and user type")
	ErrUserNotFound      = errors.New("user not found")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	resp := mapUserToResponse(&user)
	return &resp, nil
}

func (s *UserService) List(filter dto.UserListFilter) ([]dto.UserResponse, error) {
	q := s.db.Model(&models.User{})
	if filter.UserType != "" {
		q = q.Where("user_type = ?", filter.UserType)
	}
	if filter.CreatedBy != nil {
		q = q.Where("created_by = ?", *filter.CreatedBy)
	}

	var users []models.User
	if err := q.Order("shop_name asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, mapUserToResponse(&users[i]))
	}
	return resp, nil
}

// Create is the admin-provisioning path. When no password is supplied a
// random temporary one is hashed and stored; it is never returned, so
// such an account cannot log in until the password is reset out of
// band.
func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Email == "" || req.UserType == "" {
		return nil, ErrMissingUserFields
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	password := req.Password
	if password == "" {
		generated, err := randomPassword(8)
		if err != nil {
			return nil, fmt.Errorf("failed to generate password: %w", err)
		}
		password = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hash),
		UserType:  req.UserType,
		ShopName:  req.ShopName,
		GSTNumber: req.GSTNumber,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedBy: req.CreatedBy,
	}
	user.Normalize()

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := mapUserToResponse(&user)
	return &resp, nil
}

func mapUserToResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  u.UserType,
		ShopName:  u.ShopName,
		GSTNumber: u.GSTNumber,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomPassword(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf), nil
}
