package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
	"github.com/madiaz/bizledger/internal/pkg/session"
	"github.com/madiaz/bizledger/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account. The first registered user
// becomes the admin.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := repo.GetByEmail(email); err == nil {
		return badRequest(c, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return serverError(c, err)
	}

	user, err := models.CreateUser(strings.TrimSpace(req.Name), email, req.Password)
	if err != nil {
		return badRequest(c, err.Error())
	}

	count, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	if count == 0 {
		user.Role = models.ROLE_ADMIN
	}

	if err := repo.Create(user); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin verifies credentials and opens a session
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "invalid credentials",
		})
	}
	if !user.IsActive() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "account disabled",
		})
	}

	if err := openSession(c, user); err != nil {
		return serverError(c, err)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repo.Update(user); err != nil {
		return serverError(c, err)
	}

	return c.JSON(user)
}

// HandleLogout destroys the current session
func HandleLogout(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	sess, err := store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMe returns the authenticated user's context
func HandleMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return respondRepoError(c, err, "user not found")
	}

	return c.JSON(user)
}

func openSession(c *fiber.Ctx, user *models.User) error {
	store := session.GetSessionStore()
	if store == nil {
		return errors.New("session store not initialized")
	}

	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)
	return sess.Save()
}
