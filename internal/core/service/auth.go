package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) GenerateToken(userID uuid.UUID, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": string(role),
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken resolves a bearer token to the actor context the core
// authorizes against.
func (s *AuthService) ValidateToken(tokenString string) (domain.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return domain.Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, errors.New("invalid token")
	}

	idStr, ok := claims["sub"].(string)
	if !ok {
		return domain.Actor{}, errors.New("invalid token claims")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return domain.Actor{}, err
	}

	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if !role.IsValid() {
		return domain.Actor{}, errors.New("invalid role claim")
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}
