package dto

import "time"

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	BoardID     string `json:"boardId" binding:"required"`
	ColumnID    string `json:"columnId" binding:"required"`
}

type MoveCardRequest struct {
	CardID     string `json:"cardId" binding:"required"`
	ToColumnID string `json:"toColumnId" binding:"required"`
	ToPosition int    `json:"toPosition"`
}

// UpdateCardRequest is a field patch: nil pointers leave the stored value
// untouched.
type UpdateCardRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Labels      []string   `json:"labels"`
	Assignees   []string   `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
