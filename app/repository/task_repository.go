package repository

import (
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task in the database
func (r *taskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *taskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates an existing task in the database
func (r *taskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a task and its direct children
func (r *taskRepository) Delete(id uint) error {
	if err := r.db.Where("parent_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Task{}, id).Error
}

// ListAll retrieves the flat task table ordered for tree assembly
func (r *taskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("position ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// ListByClient retrieves all tasks attached to one client
func (r *taskRepository) ListByClient(clientID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("client_id = ?", clientID).Order("position ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// Count returns the total number of tasks
func (r *taskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}
