package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskflow_backend/internal/models"
)

var ErrBoardNotFound = errors.New("board not found")

type BoardRepository interface {
	Create(board *models.Board) error
	FindByID(id string) (*models.Board, error)
	FindByWorkspaceID(workspaceID string) ([]models.Board, error)
	Save(board *models.Board) error
	Delete(id string) error
}

type BoardRepositoryImpl struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &BoardRepositoryImpl{db: db}
}

func (r *BoardRepositoryImpl) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

func (r *BoardRepositoryImpl) FindByID(id string) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepositoryImpl) FindByWorkspaceID(workspaceID string) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *BoardRepositoryImpl) Save(board *models.Board) error {
	return r.db.Save(board).Error
}

func (r *BoardRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Board{}, "id = ?", id).Error
}
