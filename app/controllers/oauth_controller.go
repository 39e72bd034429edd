package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

// HandleOAuthBegin redirects the browser to the identity provider
func HandleOAuthBegin(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow and logs the user in
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("OAuth failed: %v", err))
	}

	repo := repository.GetGlobalFactory().GetUserRepository()

	appUser, err := repo.GetByProviderAccount(u.Provider, u.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Optional email match if provided
		if u.Email != "" {
			appUser, err = repo.GetByEmail(u.Email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return serverError(c, err)
			}
		}
		if appUser == nil || appUser.ID == 0 {
			// Create new user; the password is a random placeholder since
			// validation requires one. It is never used for login.
			placeholder := fmt.Sprintf("oauth_%d", time.Now().UnixNano())
			hash, _ := models.HashPassword(placeholder)
			email := u.Email
			if email == "" {
				email = fmt.Sprintf("%s_%s@%s.oauth.local", u.Provider, u.UserID, u.Provider)
			}
			appUser = &models.User{
				Name:     firstNonEmpty(u.Name, u.NickName, u.Email, "User"),
				Email:    email,
				Password: hash,
				Role:     models.ROLE_USER,
				Status:   models.USER_STATUS_ACTIVE,
			}
			if err := repo.Create(appUser); err != nil {
				return serverError(c, err)
			}
		}
	} else if err != nil {
		return serverError(c, err)
	}

	var exp *time.Time
	if !u.ExpiresAt.IsZero() {
		t := u.ExpiresAt
		exp = &t
	}
	account := &models.ProviderAccount{
		UserID:         appUser.ID,
		Provider:       u.Provider,
		ProviderUserID: u.UserID,
		AccessToken:    u.AccessToken,
		RefreshToken:   u.RefreshToken,
		ExpiresAt:      exp,
	}
	if err := repo.LinkProviderAccount(account); err != nil {
		return serverError(c, err)
	}

	if err := openSession(c, appUser); err != nil {
		return serverError(c, err)
	}

	now := time.Now()
	appUser.LastLoginAt = &now
	if err := repo.Update(appUser); err != nil {
		return serverError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleOAuthLogout clears the provider session and redirects home
func HandleOAuthLogout(c *fiber.Ctx) error {
	_ = gothfiber.Logout(c)
	return HandleLogout(c)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
