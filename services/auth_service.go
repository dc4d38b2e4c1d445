package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// AuthClaims is the session token payload: account identity plus the role flag.
type AuthClaims struct {
	UserID  uint `json:"id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthService hashes credentials, verifies logins and issues session tokens.
type AuthService struct {
	DB         *gorm.DB
	secret     []byte
	bcryptCost int
	tokenTTL   time.Duration
}

func NewAuthService(db *gorm.DB, secret []byte, bcryptCost int, tokenTTL time.Duration) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{DB: db, secret: secret, bcryptCost: bcryptCost, tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Phone    string
	IDNumber string
	Address  string
}

// Register stores a new account with a bcrypt hash of the presented secret.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		IDNumber: strings.TrimSpace(in.IDNumber),
		Address:  strings.TrimSpace(in.Address),
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

// Login verifies the username/password pair and issues a signed session token.
// Unknown usernames and wrong passwords intentionally fail the same way.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// IssueToken signs an HS256 token carrying {id, is_admin} with a fixed validity window.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
