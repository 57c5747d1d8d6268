package repositories

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"taskflow_backend/internal/models"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceRepository interface {
	Create(ws *models.Workspace) error
	FindByID(id string) (*models.Workspace, error)
	FindByMember(userID string) ([]models.Workspace, error)
	Save(ws *models.Workspace) error
	Delete(id string) error
}

type WorkspaceRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &WorkspaceRepositoryImpl{db: db}
}

func (r *WorkspaceRepositoryImpl) Create(ws *models.Workspace) error {
	return r.db.Create(ws).Error
}

func (r *WorkspaceRepositoryImpl) FindByID(id string) (*models.Workspace, error) {
	var ws models.Workspace
	if err := r.db.First(&ws, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &ws, nil
}

// FindByMember returns the workspaces whose members list contains userID,
// using a jsonb containment query.
func (r *WorkspaceRepositoryImpl) FindByMember(userID string) ([]models.Workspace, error) {
	needle, err := json.Marshal([]string{userID})
	if err != nil {
		return nil, err
	}

	var workspaces []models.Workspace
	err = r.db.
		Where("members @> ?", string(needle)).
		Order("created_at ASC").
		Find(&workspaces).Error
	return workspaces, err
}

func (r *WorkspaceRepositoryImpl) Save(ws *models.Workspace) error {
	return r.db.Save(ws).Error
}

func (r *WorkspaceRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Workspace{}, "id = ?", id).Error
}
