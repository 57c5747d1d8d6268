package repositories

import (
	"gorm.io/gorm"

	"taskflow_backend/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByCardID(cardID string) ([]models.Comment, error)
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByCardID(cardID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
