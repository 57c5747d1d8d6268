package services

import (
	"taskflow_backend/internal/logger"
	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"
)

type WorkspaceService interface {
	Create(userID string, req *dto.CreateWorkspaceRequest) (*models.Workspace, error)
	ListForUser(userID string) ([]models.Workspace, error)
	Get(userID, workspaceID string) (*models.Workspace, error)
	AddMember(userID, workspaceID, memberID string) (*models.Workspace, error)
	RemoveMember(userID, workspaceID, memberID string) (*models.Workspace, error)
	Rename(userID, workspaceID, name string) (*models.Workspace, error)
	Delete(userID, workspaceID string) error
}

type WorkspaceServiceImpl struct {
	workspaceRepo repositories.WorkspaceRepository
	boardRepo     repositories.BoardRepository
	columnRepo    repositories.ColumnRepository
	cardRepo      repositories.CardRepository
}

func NewWorkspaceService(
	workspaceRepo repositories.WorkspaceRepository,
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	cardRepo repositories.CardRepository,
) WorkspaceService {
	return &WorkspaceServiceImpl{
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		columnRepo:    columnRepo,
		cardRepo:      cardRepo,
	}
}

// Create makes userID the owner and first member of a new workspace.
func (s *WorkspaceServiceImpl) Create(userID string, req *dto.CreateWorkspaceRequest) (*models.Workspace, error) {
	ws := &models.Workspace{
		Name:    req.Name,
		OwnerID: userID,
		Members: models.StringList{userID},
		Boards:  models.StringList{},
	}
	if err := s.workspaceRepo.Create(ws); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ws, nil
}

func (s *WorkspaceServiceImpl) ListForUser(userID string) ([]models.Workspace, error) {
	workspaces, err := s.workspaceRepo.FindByMember(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return workspaces, nil
}

func (s *WorkspaceServiceImpl) Get(userID, workspaceID string) (*models.Workspace, error) {
	ws, err := s.findWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	if !ws.HasMember(userID) {
		return nil, apperrors.ErrNotWorkspaceMember
	}
	return ws, nil
}

// AddMember requires ownership, not mere membership. Adding an existing
// member is a no-op.
func (s *WorkspaceServiceImpl) AddMember(userID, workspaceID, memberID string) (*models.Workspace, error) {
	ws, err := s.findWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	if !ws.IsOwner(userID) {
		return nil, apperrors.ErrNotWorkspaceOwner
	}

	if !models.Contains(ws.Members, memberID) {
		ws.Members = append(ws.Members, memberID)
		if err := s.workspaceRepo.Save(ws); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return ws, nil
}

func (s *WorkspaceServiceImpl) RemoveMember(userID, workspaceID, memberID string) (*models.Workspace, error) {
	ws, err := s.findWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	if !ws.IsOwner(userID) {
		return nil, apperrors.ErrNotWorkspaceOwner
	}

	ws.Members = models.Remove(ws.Members, memberID)
	if err := s.workspaceRepo.Save(ws); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ws, nil
}

func (s *WorkspaceServiceImpl) Rename(userID, workspaceID, name string) (*models.Workspace, error) {
	ws, err := s.findWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	if !ws.IsOwner(userID) {
		return nil, apperrors.ErrNotWorkspaceOwner
	}

	ws.Name = name
	if err := s.workspaceRepo.Save(ws); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ws, nil
}

// Delete cascades through every board, column and card in the workspace.
// The multi-entity walk is not transactional: a missing intermediate is
// logged and skipped, the top-level delete still proceeds.
func (s *WorkspaceServiceImpl) Delete(userID, workspaceID string) error {
	ws, err := s.findWorkspace(workspaceID)
	if err != nil {
		return err
	}
	if !ws.IsOwner(userID) {
		return apperrors.ErrNotWorkspaceOwner
	}

	boards, err := s.boardRepo.FindByWorkspaceID(workspaceID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	for _, board := range boards {
		deleteBoardContents(s.columnRepo, s.cardRepo, board.ID)
		if err := s.boardRepo.Delete(board.ID); err != nil {
			logger.Warn("cascade: failed to delete board",
				"board_id", board.ID, "workspace_id", workspaceID, "error", err)
		}
	}

	if err := s.workspaceRepo.Delete(workspaceID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *WorkspaceServiceImpl) findWorkspace(workspaceID string) (*models.Workspace, error) {
	ws, err := s.workspaceRepo.FindByID(workspaceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return ws, nil
}

// deleteBoardContents removes a board's columns and their cards, best-effort.
// Shared by board and workspace cascades.
func deleteBoardContents(columnRepo repositories.ColumnRepository, cardRepo repositories.CardRepository, boardID string) {
	columns, err := columnRepo.FindByBoardID(boardID)
	if err != nil {
		logger.Warn("cascade: failed to list columns", "board_id", boardID, "error", err)
		return
	}

	for _, column := range columns {
		if err := cardRepo.DeleteByColumnID(column.ID); err != nil {
			logger.Warn("cascade: failed to delete cards",
				"column_id", column.ID, "board_id", boardID, "error", err)
		}
		if err := columnRepo.Delete(column.ID); err != nil {
			logger.Warn("cascade: failed to delete column",
				"column_id", column.ID, "board_id", boardID, "error", err)
		}
	}
}
