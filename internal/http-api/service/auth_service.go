package service

import (
	"errors"
	"strings"
	"time"

	"storehub/internal/config"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
	"storehub/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("role mismatch")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidName     = errors.New("name must be 3-60 characters")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password does not meet the policy")
	ErrInvalidRole     = errors.New("unrecognized role")
)

// Claims is the payload of every issued token: the subject's id and role.
type Claims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(name, email, password, address, publicRole string) (*models.User, string, error)
	Login(email, password, roleHint string) (*models.User, string, error)
	Me(userID uint) (*models.User, error)
	IssueToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   cfg.TokenTTL, // 7 days
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup registers a user under the stricter self-service password policy and
// returns the created user with a fresh token.
func (s *authService) Signup(name, email, password, address, publicRole string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if !ValidName(name) {
		return nil, "", ErrInvalidName
	}
	if !ValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if !ValidSignupPassword(password) {
		return nil, "", ErrInvalidPassword
	}
	if publicRole != "" && !models.PublicRoles[publicRole] {
		return nil, "", ErrInvalidRole
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailInUse
	}

	// Hash password; the plaintext is never stored or logged
	hashedPassword, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Address:  strings.TrimSpace(address),
		Role:     models.RoleFromPublic(publicRole),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by email and password. The optional roleHint, in the
// public vocabulary, must match the stored role when present.
func (s *authService) Login(email, password, roleHint string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword(auth.DummyHash, password)
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if roleHint != "" && models.RoleFromPublic(roleHint) != user.Role {
		return nil, "", ErrRoleMismatch
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Me(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// IssueToken signs a time-bounded HS256 token binding the user's id and role.
// Rotating the signing key invalidates every outstanding token; there is no
// revocation list.
func (s *authService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken is pure computation: it rejects bad signatures, foreign
// signing methods, malformed tokens and expired ones.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
