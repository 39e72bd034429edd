package repository

import (
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// clientRepository implements the ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client in the database
func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client with its plan subscriptions
func (r *clientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Plans").First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update updates an existing client in the database
func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete soft deletes a client by its ID
func (r *clientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Client{}, id).Error
}

// List retrieves a page of clients ordered by name
func (r *clientRepository) List(offset, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Preload("Plans").Order("name ASC").Offset(offset).Limit(limit).Find(&clients).Error
	return clients, err
}

// ListAll retrieves all clients with their plan subscriptions
func (r *clientRepository) ListAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Preload("Plans").Find(&clients).Error
	return clients, err
}

// Count returns the total number of clients
func (r *clientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, err
}

// Search finds clients by name or email fragment
func (r *clientRepository) Search(query string) ([]models.Client, error) {
	var clients []models.Client
	pattern := "%" + query + "%"
	err := r.db.Preload("Plans").
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

// AddPlan records a new plan subscription for a client
func (r *clientRepository) AddPlan(sub *models.ClientPlan) error {
	return r.db.Create(sub).Error
}

// RemovePlan deletes one subscription row of a client
func (r *clientRepository) RemovePlan(clientID, subscriptionID uint) error {
	return r.db.Where("client_id = ?", clientID).Delete(&models.ClientPlan{}, subscriptionID).Error
}
