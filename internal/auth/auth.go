package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hairlogy/barber-booking/internal/domain/reference"
	"github.com/hairlogy/barber-booking/internal/httperr"
	"github.com/hairlogy/barber-booking/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type StaffFinder interface {
	GetStaff(ctx context.Context, username string) (*models.StaffUser, error)
}

type Claims struct {
	Username string
	BarberID *models.BarberID
}

type LoginResult struct {
	Token    string           `json:"token"`
	Username string           `json:"username"`
	BarberID *models.BarberID `json:"barber_id"`
}

// Service issues and verifies HS256 staff tokens.
type Service struct {
	staff  StaffFinder
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(staff StaffFinder, secret string, ttl time.Duration) *Service {
	return &Service{
		staff:  staff,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, httperr.Validation("invalid_request", "Username and password are required")
	}

	invalid := httperr.Unauthorized("invalid_credentials", "Invalid credentials")

	user, err := s.staff.GetStaff(ctx, username)
	if errors.Is(err, reference.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		BarberID: user.BarberID,
	}, nil
}

func (s *Service) generateToken(user *models.StaffUser) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"sub":      user.Username,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}
	if user.BarberID != nil {
		claims["barber_id"] = int(*user.BarberID)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	username, _ := mc["sub"].(string)
	if username == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Username: username}
	if raw, ok := mc["barber_id"].(float64); ok {
		id := models.BarberID(raw)
		claims.BarberID = &id
	}
	return claims, nil
}
