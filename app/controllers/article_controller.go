package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

type articleRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"is_published"`
}

// HandleListArticles returns a page of knowledge base articles. Anonymous
// callers only see published entries.
func HandleListArticles(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalFactory().GetArticleRepository()

	var (
		articles []models.Article
		err      error
	)
	if c.QueryBool("include_drafts", false) {
		articles, err = repo.GetAll(offset, limit)
	} else {
		articles, err = repo.GetPublished(offset, limit)
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"articles": articles,
		"offset":   offset,
		"limit":    limit,
	})
}

// HandleGetArticleBySlug returns one published article by its slug
func HandleGetArticleBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return badRequest(c, "slug is required")
	}

	article, err := repository.GetGlobalFactory().GetArticleRepository().GetBySlug(slug)
	if err != nil {
		return respondRepoError(c, err, "article not found")
	}

	return c.JSON(article)
}

// HandleCreateArticle creates a knowledge base article. A missing slug is
// derived from the title.
func HandleCreateArticle(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = models.Slugify(req.Title)
	}

	repo := repository.GetGlobalFactory().GetArticleRepository()
	exists, err := repo.SlugExists(slug)
	if err != nil {
		return serverError(c, err)
	}
	if exists {
		return badRequest(c, "slug already in use")
	}

	article := &models.Article{
		Title:   strings.TrimSpace(req.Title),
		Slug:    slug,
		Content: req.Content,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if err := article.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Create(article); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

// HandleUpdateArticle updates an existing article
func HandleUpdateArticle(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	repo := repository.GetGlobalFactory().GetArticleRepository()
	article, err := repo.GetByID(id)
	if err != nil {
		return respondRepoError(c, err, "article not found")
	}

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Title != "" {
		article.Title = strings.TrimSpace(req.Title)
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		exists, err := repo.SlugExistsExceptID(slug, id)
		if err != nil {
			return serverError(c, err)
		}
		if exists {
			return badRequest(c, "slug already in use")
		}
		article.Slug = slug
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if err := article.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Update(article); err != nil {
		return serverError(c, err)
	}

	return c.JSON(article)
}

// HandleDeleteArticle deletes an article
func HandleDeleteArticle(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	if err := repository.GetGlobalFactory().GetArticleRepository().Delete(id); err != nil {
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
