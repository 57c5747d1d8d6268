package services

import (
	"taskflow_backend/internal/logger"
	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"
)

// defaultColumnTitles are created, in order, for every new board.
var defaultColumnTitles = []string{"Todo", "Doing", "Done"}

type BoardService interface {
	Create(userID string, req *dto.CreateBoardRequest) (*models.Board, error)
	ListInWorkspace(workspaceID string) ([]models.Board, error)
	GetDetails(userID, boardID string) (*dto.BoardDetails, error)
	AddMember(boardID, memberID string) (*models.Board, error)
	Rename(userID, boardID, title string) (*models.Board, error)
	Delete(userID, boardID string) error
}

type BoardServiceImpl struct {
	workspaceRepo repositories.WorkspaceRepository
	boardRepo     repositories.BoardRepository
	columnRepo    repositories.ColumnRepository
	cardRepo      repositories.CardRepository
}

func NewBoardService(
	workspaceRepo repositories.WorkspaceRepository,
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	cardRepo repositories.CardRepository,
) BoardService {
	return &BoardServiceImpl{
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		columnRepo:    columnRepo,
		cardRepo:      cardRepo,
	}
}

// Create adds a board to a workspace the caller belongs to. The creator
// becomes the board's only member. The three default columns are created
// best-effort: a failure partway leaves the board partially initialized
// rather than rolling anything back.
func (s *BoardServiceImpl) Create(userID string, req *dto.CreateBoardRequest) (*models.Board, error) {
	ws, err := s.workspaceRepo.FindByID(req.WorkspaceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !ws.HasMember(userID) {
		return nil, apperrors.ErrNotWorkspaceMember
	}

	board := &models.Board{
		Title:       req.Title,
		WorkspaceID: req.WorkspaceID,
		Members:     models.StringList{userID},
		Columns:     models.StringList{},
	}
	if err := s.boardRepo.Create(board); err != nil {
		return nil, apperrors.InternalError(err)
	}

	ws.Boards = append(ws.Boards, board.ID)
	if err := s.workspaceRepo.Save(ws); err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i, title := range defaultColumnTitles {
		column := &models.Column{
			Title:    title,
			BoardID:  board.ID,
			Position: i,
			Cards:    models.StringList{},
		}
		if err := s.columnRepo.Create(column); err != nil {
			logger.Warn("failed to create default column",
				"board_id", board.ID, "title", title, "error", err)
			continue
		}
		board.Columns = append(board.Columns, column.ID)
	}

	if err := s.boardRepo.Save(board); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return board, nil
}

func (s *BoardServiceImpl) ListInWorkspace(workspaceID string) ([]models.Board, error) {
	boards, err := s.boardRepo.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return boards, nil
}

// GetDetails returns the board with its columns sorted by position and each
// column's cards. Access is checked against the parent workspace's members.
func (s *BoardServiceImpl) GetDetails(userID, boardID string) (*dto.BoardDetails, error) {
	board, err := s.findBoard(boardID)
	if err != nil {
		return nil, err
	}

	ws, err := s.workspaceRepo.FindByID(board.WorkspaceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, apperrors.NewNotFoundError("workspace", "Parent workspace not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !ws.HasMember(userID) {
		return nil, apperrors.ErrNotWorkspaceMember
	}

	columns, err := s.columnRepo.FindByBoardID(boardID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	details := &dto.BoardDetails{
		Board:   board,
		Columns: make([]dto.ColumnWithCard, 0, len(columns)),
	}
	for _, column := range columns {
		cards, err := s.cardRepo.FindByColumnID(column.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		details.Columns = append(details.Columns, dto.ColumnWithCard{
			Column: column,
			Cards:  cards,
		})
	}
	return details, nil
}

// AddMember has no authorization check beyond board existence. That matches
// the inherited behavior; see DESIGN.md for the open question.
func (s *BoardServiceImpl) AddMember(boardID, memberID string) (*models.Board, error) {
	board, err := s.findBoard(boardID)
	if err != nil {
		return nil, err
	}

	if !models.Contains(board.Members, memberID) {
		board.Members = append(board.Members, memberID)
		if err := s.boardRepo.Save(board); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return board, nil
}

// Rename requires board membership (unlike deletion, which checks the
// workspace scope).
func (s *BoardServiceImpl) Rename(userID, boardID, title string) (*models.Board, error) {
	board, err := s.findBoard(boardID)
	if err != nil {
		return nil, err
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	board.Title = title
	if err := s.boardRepo.Save(board); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return board, nil
}

// Delete requires workspace membership and cascades to the board's columns
// and cards, then unlinks the board from the workspace list.
func (s *BoardServiceImpl) Delete(userID, boardID string) error {
	board, err := s.findBoard(boardID)
	if err != nil {
		return err
	}

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

	deleteBoardContents(s.columnRepo, s.cardRepo, boardID)

	ws.Boards = models.Remove(ws.Boards, boardID)
	if err := s.workspaceRepo.Save(ws); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BoardServiceImpl) findBoard(boardID string) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return board, nil
}
