package dto

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

type MemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}
