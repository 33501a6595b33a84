package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
)

// Access tokens are long-lived by product decision: staff terminals stay
// signed in for a month.
const AccessTokenTTL = 30 * 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Authenticate resolves a user by email + role and verifies the password.
func Authenticate(db *gorm.DB, email, password, role string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	err := db.First(&user, "LOWER(user_email) = ? AND user_role = ?", strings.ToLower(email), role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.UserIsActive {
		return nil, errors.New("account is disabled")
	}
	if !CheckPassword(user.UserPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueToken signs an HS256 access token carrying {id, role, designation}.
func IssueToken(user *authModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	designation := ""
	if user.UserDesignation != nil {
		designation = *user.UserDesignation
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":          user.UserID.String(),
		"role":        user.UserRole,
		"designation": designation,
		"iat":         now.Unix(),
		"exp":         now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// BlacklistToken stores a token until its expiry so the auth middleware
// rejects it after logout.
func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

// TokenExpiry reads the exp claim without verifying the signature; used only
// to bound blacklist rows.
func TokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(AccessTokenTTL)
}
