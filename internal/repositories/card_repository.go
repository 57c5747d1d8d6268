package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskflow_backend/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

type CardRepository interface {
	Create(card *models.Card) error
	FindByID(id string) (*models.Card, error)
	FindByColumnID(columnID string) ([]models.Card, error)
	Save(card *models.Card) error
	UpdatePosition(id string, position int) error
	Delete(id string) error
	DeleteByColumnID(columnID string) error
}

type CardRepositoryImpl struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &CardRepositoryImpl{db: db}
}

func (r *CardRepositoryImpl) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

func (r *CardRepositoryImpl) FindByID(id string) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepositoryImpl) FindByColumnID(columnID string) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.
		Where("column_id = ?", columnID).
		Order("position ASC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepositoryImpl) Save(card *models.Card) error {
	return r.db.Save(card).Error
}

func (r *CardRepositoryImpl) UpdatePosition(id string, position int) error {
	return r.db.Model(&models.Card{}).
		Where("id = ?", id).
		Update("position", position).Error
}

func (r *CardRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Card{}, "id = ?", id).Error
}

// DeleteByColumnID removes every card in a column; used by cascades.
func (r *CardRepositoryImpl) DeleteByColumnID(columnID string) error {
	return r.db.Delete(&models.Card{}, "column_id = ?", columnID).Error
}
