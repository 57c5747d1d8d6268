package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskflow_backend/internal/models"
)

var ErrColumnNotFound = errors.New("column not found")

type ColumnRepository interface {
	Create(column *models.Column) error
	FindByID(id string) (*models.Column, error)
	FindByBoardID(boardID string) ([]models.Column, error)
	Save(column *models.Column) error
	UpdatePosition(id string, position int) error
	Delete(id string) error
}

type ColumnRepositoryImpl struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &ColumnRepositoryImpl{db: db}
}

func (r *ColumnRepositoryImpl) Create(column *models.Column) error {
	return r.db.Create(column).Error
}

func (r *ColumnRepositoryImpl) FindByID(id string) (*models.Column, error) {
	var column models.Column
	if err := r.db.First(&column, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepositoryImpl) FindByBoardID(boardID string) ([]models.Column, error) {
	var columns []models.Column
	err := r.db.
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&columns).Error
	return columns, err
}

func (r *ColumnRepositoryImpl) Save(column *models.Column) error {
	return r.db.Save(column).Error
}

func (r *ColumnRepositoryImpl) UpdatePosition(id string, position int) error {
	return r.db.Model(&models.Column{}).
		Where("id = ?", id).
		Update("position", position).Error
}

func (r *ColumnRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Column{}, "id = ?", id).Error
}
