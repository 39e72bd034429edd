package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

// HandleGetSettings returns the current company settings
func HandleGetSettings(c *fiber.Ctx) error {
	settings, err := repository.GetGlobalFactory().GetSettingRepository().Get()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(settings)
}

// HandleUpdateSettings validates and persists the company settings
func HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.CompanySettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := repository.GetGlobalFactory().GetSettingRepository().Save(&settings); err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(settings)
}
