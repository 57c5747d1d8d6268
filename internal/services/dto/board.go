package dto

import "taskflow_backend/internal/models"

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	WorkspaceID string `json:"workspaceId" binding:"required"`
}

type RenameBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

// BoardDetails is the full board view: columns sorted by position, each with
// its cards loaded.
type BoardDetails struct {
	Board   *models.Board    `json:"board"`
	Columns []ColumnWithCard `json:"columns"`
}

type ColumnWithCard struct {
	Column models.Column `json:"column"`
	Cards  []models.Card `json:"cards"`
}
