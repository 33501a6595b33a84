package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/dto"
	authModel "campushub_backend/internals/features/users/auth/model"
	"campushub_backend/internals/features/users/auth/service"
	helper "campushub_backend/internals/helpers"
	authMw "campushub_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func toUserResponse(u authModel.UserModel) dto.UserResponse {
	return dto.UserResponse{
		UserID:      u.UserID.String(),
		FullName:    u.UserFullName,
		Email:       u.UserEmail,
		Role:        u.UserRole,
		Designation: u.UserDesignation,
		Phone:       u.UserPhone,
		IsActive:    u.UserIsActive,
	}
}

// Login (POST /api/auth/login)
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	user, err := service.Authenticate(ctl.DB, in.Email, in.Password, in.Role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := service.IssueToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(*user),
	})
}

// Register (POST /api/a/auth/register) — admin creates logins for staff and students.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	hash, err := service.HashPassword(in.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := authModel.UserModel{
		UserFullName:    in.FullName,
		UserEmail:       in.Email,
		UserPassword:    hash,
		UserRole:        in.Role,
		UserDesignation: in.Designation,
		UserPhone:       in.Phone,
		UserIsActive:    true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "user registered", toUserResponse(user))
}

// Logout (POST /api/u/auth/logout) — blacklists the presented token.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	token := helper.GetRawAccessToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "missing token")
	}
	if err := service.BlacklistToken(ctl.DB, token, service.TokenExpiry(token)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "logged out", nil)
}

// Me (GET /api/u/auth/me)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	actor, ok := authMw.ActorFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing actor information")
	}
	var user authModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", actor.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonOK(c, "", toUserResponse(user))
}

// ChangePassword (POST /api/u/auth/change-password)
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	actor, ok := authMw.ActorFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing actor information")
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, &in); err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", actor.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	if !service.CheckPassword(user.UserPassword, in.OldPassword) {
		return helper.JsonError(c, fiber.StatusBadRequest, "old password is incorrect")
	}
	hash, err := service.HashPassword(in.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := ctl.DB.Model(&user).Update("user_password", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "password changed", nil)
}
