package services

import (
	"taskflow_backend/internal/logger"
	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"
)

type CardService interface {
	Create(userID string, req *dto.CreateCardRequest) (*models.Card, error)
	Move(userID string, req *dto.MoveCardRequest) error
	Update(userID, cardID string, req *dto.UpdateCardRequest) (*models.Card, error)
	AddComment(userID, cardID, text string) (*models.Comment, error)
	Delete(userID, cardID string) error
}

type CardServiceImpl struct {
	workspaceRepo repositories.WorkspaceRepository
	boardRepo     repositories.BoardRepository
	columnRepo    repositories.ColumnRepository
	cardRepo      repositories.CardRepository
	commentRepo   repositories.CommentRepository
}

func NewCardService(
	workspaceRepo repositories.WorkspaceRepository,
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	cardRepo repositories.CardRepository,
	commentRepo repositories.CommentRepository,
) CardService {
	return &CardServiceImpl{
		workspaceRepo: workspaceRepo,
		boardRepo:     boardRepo,
		columnRepo:    columnRepo,
		cardRepo:      cardRepo,
		commentRepo:   commentRepo,
	}
}

// Create appends a card at the end of a column.
func (s *CardServiceImpl) Create(userID string, req *dto.CreateCardRequest) (*models.Card, error) {
	board, err := s.findBoard(req.BoardID)
	if err != nil {
		return nil, err
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	column, err := s.findColumn(req.ColumnID)
	if err != nil {
		return nil, err
	}

	card := &models.Card{
		Title:       req.Title,
		Description: req.Description,
		BoardID:     req.BoardID,
		ColumnID:    req.ColumnID,
		Position:    len(column.Cards),
		Labels:      models.StringList{},
		Assignees:   models.StringList{},
		Comments:    models.StringList{},
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, apperrors.InternalError(err)
	}

	column.Cards = append(column.Cards, card.ID)
	if err := s.columnRepo.Save(column); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

// Move takes the card out of its source column, inserts it into the
// destination at the requested position (clamped; past-the-end appends) and
// reindexes every card in both columns so stored positions match list
// indexes again. The steps are not one transaction; a failure partway can
// leave positions stale until the next reindex.
func (s *CardServiceImpl) Move(userID string, req *dto.MoveCardRequest) error {
	card, err := s.findCard(req.CardID)
	if err != nil {
		return err
	}

	board, err := s.findBoard(card.BoardID)
	if err != nil {
		return err
	}
	if !board.HasMember(userID) {
		return apperrors.ErrNotBoardMember
	}

	fromColumn, err := s.findColumn(card.ColumnID)
	if err != nil {
		return err
	}
	toColumn, err := s.columnRepo.FindByID(req.ToColumnID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrColumnNotFound) {
			return apperrors.NewNotFoundError("column", "Destination column not found")
		}
		return apperrors.InternalError(err)
	}

	fromColumn.Cards = models.Remove(fromColumn.Cards, card.ID)
	if err := s.columnRepo.Save(fromColumn); err != nil {
		return apperrors.InternalError(err)
	}

	// Moving within one column: operate on the already-shortened list.
	if toColumn.ID == fromColumn.ID {
		toColumn = fromColumn
	}

	toColumn.Cards = models.InsertAt(toColumn.Cards, card.ID, req.ToPosition)
	if err := s.columnRepo.Save(toColumn); err != nil {
		return apperrors.InternalError(err)
	}

	card.ColumnID = toColumn.ID
	card.Position = req.ToPosition
	if err := s.cardRepo.Save(card); err != nil {
		return apperrors.InternalError(err)
	}

	s.reindexColumn(toColumn)
	if fromColumn.ID != toColumn.ID {
		s.reindexColumn(fromColumn)
	}
	return nil
}

// reindexColumn rewrites each contained card's position to its index in the
// column's list. Individual failures are logged, not surfaced: positions are
// caches and the list stays authoritative.
func (s *CardServiceImpl) reindexColumn(column *models.Column) {
	for i, cardID := range column.Cards {
		if err := s.cardRepo.UpdatePosition(cardID, i); err != nil {
			logger.Warn("reindex: failed to update card position",
				"card_id", cardID, "column_id", column.ID, "position", i, "error", err)
		}
	}
}

// Update applies a field patch; nil fields stay untouched.
func (s *CardServiceImpl) Update(userID, cardID string, req *dto.UpdateCardRequest) (*models.Card, error) {
	card, err := s.findCard(cardID)
	if err != nil {
		return nil, err
	}

	board, err := s.findBoard(card.BoardID)
	if err != nil {
		return nil, err
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.Labels != nil {
		card.Labels = models.StringList(req.Labels)
	}
	if req.Assignees != nil {
		card.Assignees = models.StringList(req.Assignees)
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}

	if err := s.cardRepo.Save(card); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

func (s *CardServiceImpl) AddComment(userID, cardID, text string) (*models.Comment, error) {
	card, err := s.findCard(cardID)
	if err != nil {
		return nil, err
	}

	board, err := s.findBoard(card.BoardID)
	if err != nil {
		return nil, err
	}
	if !board.HasMember(userID) {
		return nil, apperrors.ErrNotBoardMember
	}

	comment := &models.Comment{
		CardID: card.ID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	card.Comments = append(card.Comments, comment.ID)
	if err := s.cardRepo.Save(card); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comment, nil
}

// Delete is authorized against the parent workspace's members, not the
// board's. A card whose column already vanished is still deleted; the
// missing parent is only a warning. Comment rows are left behind.
func (s *CardServiceImpl) Delete(userID, cardID string) error {
	card, err := s.findCard(cardID)
	if err != nil {
		return err
	}

	column, err := s.columnRepo.FindByID(card.ColumnID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrColumnNotFound) {
			return apperrors.InternalError(err)
		}
		logger.Warn("parent column for card not found, deleting card anyway",
			"card_id", cardID, "column_id", card.ColumnID)
		column = nil
	}

	board, err := s.boardRepo.FindByID(card.BoardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return apperrors.NewNotFoundError("board", "Parent board not found")
		}
		return apperrors.InternalError(err)
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

	if column != nil {
		column.Cards = models.Remove(column.Cards, cardID)
		if err := s.columnRepo.Save(column); err != nil {
			// Don't fail the whole delete over a stale reference.
			logger.Warn("failed to remove card reference from column",
				"card_id", cardID, "column_id", column.ID, "error", err)
		}
	}

	if err := s.cardRepo.Delete(cardID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CardServiceImpl) findCard(cardID string) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

func (s *CardServiceImpl) findBoard(boardID string) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBoardNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return board, nil
}

func (s *CardServiceImpl) findColumn(columnID string) (*models.Column, error) {
	column, err := s.columnRepo.FindByID(columnID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrColumnNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return column, nil
}
