package repository

import (
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article in the database
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by its ID
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves a published article by its slug
func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetPublished retrieves a page of published articles
func (r *articleRepository) GetPublished(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("is_published = ?", true).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	return articles, err
}

// GetAll retrieves a page of all articles including drafts
func (r *articleRepository) GetAll(offset, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	return articles, err
}

// Update updates an existing article in the database
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete soft deletes an article by its ID
func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// Count returns the total number of articles
func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists on any other article
func (r *articleRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ? AND id <> ?", slug, id).Count(&count).Error
	return count > 0, err
}
