package handlers

import (
	"net/http"

	"taskflow_backend/internal/services"
	"taskflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	*BaseHandler
	boardService services.BoardService
}

func NewBoardHandler(base *BaseHandler, boardService services.BoardService) *BoardHandler {
	return &BoardHandler{
		BaseHandler:  base,
		boardService: boardService,
	}
}

func (h *BoardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	boards := rg.Group("/boards")
	{
		boards.POST("", h.Create)
		boards.GET("/workspace/:workspaceId", h.ListInWorkspace)
		boards.GET("/:boardId", h.GetDetails)
		boards.POST("/:boardId/add-member", h.AddMember)
		boards.PATCH("/:boardId", h.Rename)
		boards.DELETE("/:boardId", h.Delete)
	}
}

func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	board, err := h.boardService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) ListInWorkspace(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	workspaceID, ok := h.RequireParam(c, "workspaceId")
	if !ok {
		return
	}

	boards, err := h.boardService.ListInWorkspace(workspaceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

func (h *BoardHandler) GetDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	boardID, ok := h.RequireParam(c, "boardId")
	if !ok {
		return
	}

	details, err := h.boardService.GetDetails(userID, boardID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// AddMember only requires an authenticated caller; any logged-in user can
// add members to any board.
func (h *BoardHandler) AddMember(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	boardID, ok := h.RequireParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.MemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	board, err := h.boardService.AddMember(boardID, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Rename(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	boardID, ok := h.RequireParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.RenameBoardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	board, err := h.boardService.Rename(userID, boardID, req.Title)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	boardID, ok := h.RequireParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.Delete(userID, boardID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board and all its contents deleted"})
}
