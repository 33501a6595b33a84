package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

// Paths that bypass auth entirely (payment gateway webhook).
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

// Actor is the resolved caller, attached to locals once per request so
// handlers never re-dispatch on raw role strings.
type Actor struct {
	ID          uuid.UUID
	Role        string
	Designation string
	Name        string
	Email       string
}

const actorKey = "actor"

func ActorFromCtx(c *fiber.Ctx) (Actor, bool) {
	a, ok := c.Locals(actorKey).(Actor)
	return a, ok
}

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		// Blacklist check (logout support).
		var blacklisted authModel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&blacklisted).Error; err == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token has been revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] blacklist lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() > int64(exp) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token expired")
		}

		idStr, _ := claims["id"].(string)
		userID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid user id in token")
		}
		role, _ := claims["role"].(string)

		// Resolve the full user once; downstream handlers read the Actor.
		var user authModel.UserModel
		if err := db.First(&user, "user_id = ? AND user_role = ?", userID, role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "user not found")
			}
			log.Printf("[ERROR] resolve actor: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}
		if !user.UserIsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
		}

		designation := ""
		if user.UserDesignation != nil {
			designation = *user.UserDesignation
		}
		c.Locals(actorKey, Actor{
			ID:          user.UserID,
			Role:        user.UserRole,
			Designation: designation,
			Name:        user.UserFullName,
			Email:       user.UserEmail,
		})
		c.Locals("user_id", user.UserID.String())
		return c.Next()
	}
}
