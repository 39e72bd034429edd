package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madiaz/bizledger/app/models"
	"github.com/madiaz/bizledger/app/repository"
)

func setupArticleApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	repository.SetGlobalRepositoriesForTest(repos)

	app := fiber.New()
	app.Get("/kb", HandleListArticles)
	app.Get("/kb/:slug", HandleGetArticleBySlug)
	app.Post("/articles", HandleCreateArticle)
	app.Put("/articles/:id", HandleUpdateArticle)
	app.Delete("/articles/:id", HandleDeleteArticle)
	return app, repos
}

func TestHandleCreateArticleDerivesSlug(t *testing.T) {
	app, _ := setupArticleApp(t)

	req := httptest.NewRequest("POST", "/articles", strings.NewReader(`{"title":"How to back up MySQL","content":"dump nightly"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var article models.Article
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&article))
	assert.Equal(t, "how-to-back-up-mysql", article.Slug)
	assert.False(t, article.IsPublished, "articles start as drafts")

	// Same title again collides on the derived slug.
	req = httptest.NewRequest("POST", "/articles", strings.NewReader(`{"title":"How to back up MySQL"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleListArticlesHidesDrafts(t *testing.T) {
	app, repos := setupArticleApp(t)
	require.NoError(t, repos.Article.Create(&models.Article{Title: "Published", Slug: "published", IsPublished: true}))
	require.NoError(t, repos.Article.Create(&models.Article{Title: "Draft", Slug: "draft"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/kb", nil))
	require.NoError(t, err)

	var body struct {
		Articles []models.Article `json:"articles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Articles, 1)
	assert.Equal(t, "published", body.Articles[0].Slug)

	resp, err = app.Test(httptest.NewRequest("GET", "/kb?include_drafts=true", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Articles, 2)
}

func TestHandleGetArticleBySlug(t *testing.T) {
	app, repos := setupArticleApp(t)
	require.NoError(t, repos.Article.Create(&models.Article{Title: "Backups", Slug: "backups", IsPublished: true}))
	require.NoError(t, repos.Article.Create(&models.Article{Title: "Draft", Slug: "draft"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/kb/backups", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Unpublished slugs look like missing articles to the public surface.
	resp, err = app.Test(httptest.NewRequest("GET", "/kb/draft", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleUpdateArticleSlugCollision(t *testing.T) {
	app, repos := setupArticleApp(t)
	require.NoError(t, repos.Article.Create(&models.Article{Title: "First", Slug: "first"}))
	require.NoError(t, repos.Article.Create(&models.Article{Title: "Second", Slug: "second"}))

	req := httptest.NewRequest("PUT", "/articles/2", strings.NewReader(`{"slug":"first"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Re-submitting its own slug is fine.
	req = httptest.NewRequest("PUT", "/articles/2", strings.NewReader(`{"slug":"second","is_published":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := repos.Article.GetByID(2)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
}
