package handlers

import (
	"net/http"

	"taskflow_backend/internal/services"
	"taskflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	*BaseHandler
	workspaceService services.WorkspaceService
}

func NewWorkspaceHandler(base *BaseHandler, workspaceService services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		BaseHandler:      base,
		workspaceService: workspaceService,
	}
}

func (h *WorkspaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.Create)
		workspaces.GET("", h.List)
		workspaces.GET("/:workspaceId", h.Get)
		workspaces.POST("/:workspaceId/add-member", h.AddMember)
		workspaces.POST("/:workspaceId/remove-member", h.RemoveMember)
		workspaces.PATCH("/:workspaceId", h.Rename)
		workspaces.DELETE("/:workspaceId", h.Delete)
	}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Get(userID, workspaceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.MemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.AddMember(userID, workspaceID, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.MemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.RemoveMember(userID, workspaceID, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Rename(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	var req dto.RenameWorkspaceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.Rename(userID, workspaceID, req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(userID, workspaceID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workspace and all related data deleted"})
}
