package dto

type CreateColumnRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

// RenameColumnRequest allows an empty title; the service keeps the old title
// in that case.
type RenameColumnRequest struct {
	Title string `json:"title"`
}

type ReorderColumnsRequest struct {
	BoardID          string   `json:"boardId" binding:"required"`
	OrderedColumnIDs []string `json:"orderedColumnIds" binding:"required"`
}
