package services

import (
	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"
)

type ColumnService interface {
	Create(userID string, req *dto.CreateColumnRequest) (*models.Column, error)
	Rename(userID, columnID, title string) (*models.Column, error)
	Reorder(userID string, req *dto.ReorderColumnsRequest) error
	Delete(userID, columnID string) error
}

type ColumnServiceImpl struct {
	workspaceRepo repositories.WorkspaceRepository
	boardRepo     repositories.BoardRepository
	columnRepo    repositories.ColumnRepository
	cardRepo      repositories.CardRepository
}

func NewColumnService(
	workspaceRepo repositories.WorkspaceRepository,
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	cardRepo repositories.CardRepository,
) ColumnService {
	return &ColumnServiceImpl{
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		columnRepo:    columnRepo,
		cardRepo:      cardRepo,
	}
}

// Create appends a column at the end of the board's list; the new position is
// the current list length.
func (s *ColumnServiceImpl) Create(userID string, req *dto.CreateColumnRequest) (*models.Column, error) {
	board, err := s.boardRepo.FindByID(req.BoardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	column := &models.Column{
		Title:    req.Title,
		BoardID:  req.BoardID,
		Position: len(board.Columns),
		Cards:    models.StringList{},
	}
	if err := s.columnRepo.Create(column); err != nil {
		return nil, apperrors.InternalError(err)
	}

	board.Columns = append(board.Columns, column.ID)
	if err := s.boardRepo.Save(board); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return column, nil
}

// Rename keeps the old title when the new one is empty.
func (s *ColumnServiceImpl) Rename(userID, columnID, title string) (*models.Column, error) {
	column, err := s.findColumn(columnID)
	if err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindByID(column.BoardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return nil, apperrors.NewNotFoundError("board", "Parent board not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	if title != "" {
		column.Title = title
		if err := s.columnRepo.Save(column); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return column, nil
}

// Reorder replaces the board's column list wholesale with the supplied
// ordering and rewrites each listed column's position to its index. The list
// is trusted: it is not validated to be a permutation of the existing
// columns.
func (s *ColumnServiceImpl) Reorder(userID string, req *dto.ReorderColumnsRequest) error {
	board, err := s.boardRepo.FindByID(req.BoardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return apperrors.ErrBoardNotFound
		}
		return apperrors.InternalError(err)
	}

	// Workspace-scope check, deliberately not board membership.
	ws, err := s.workspaceRepo.FindByID(board.WorkspaceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkspaceNotFound) {
			return apperrors.NewNotFoundError("workspace", "Parent workspace not found")
		}
		return apperrors.InternalError(err)
	}
	if !ws.HasMember(userID) {
		return apperrors.ErrNotWorkspaceMember
	}

	board.Columns = models.StringList(req.OrderedColumnIDs)
	if err := s.boardRepo.Save(board); err != nil {
		return apperrors.InternalError(err)
	}

	for i, columnID := range req.OrderedColumnIDs {
		if err := s.columnRepo.UpdatePosition(columnID, i); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// Delete removes the column and its cards. Sibling columns keep their
// positions; the resulting gap persists until an explicit reorder.
func (s *ColumnServiceImpl) Delete(userID, columnID string) error {
	column, err := s.findColumn(columnID)
	if err != nil {
		return err
	}

	board, err := s.boardRepo.FindByID(column.BoardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return apperrors.NewNotFoundError("board", "Parent board not found")
		}
		return apperrors.InternalError(err)
	}
	if !board.HasMember(userID) {
		return apperrors.ErrNotBoardMember
	}

	board.Columns = models.Remove(board.Columns, columnID)
	if err := s.boardRepo.Save(board); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.cardRepo.DeleteByColumnID(columnID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.columnRepo.Delete(columnID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ColumnServiceImpl) findColumn(columnID string) (*models.Column, error) {
	column, err := s.columnRepo.FindByID(columnID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrColumnNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return column, nil
}
