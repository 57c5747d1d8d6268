package handlers

import (
	"net/http"

	"taskflow_backend/internal/services"
	"taskflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	*BaseHandler
	columnService services.ColumnService
}

func NewColumnHandler(base *BaseHandler, columnService services.ColumnService) *ColumnHandler {
	return &ColumnHandler{
		BaseHandler:   base,
		columnService: columnService,
	}
}

func (h *ColumnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	columns := rg.Group("/columns")
	{
		columns.POST("", h.Create)
		columns.POST("/reorder", h.Reorder)
		columns.PATCH("/:columnId", h.Rename)
		columns.DELETE("/:columnId", h.Delete)
	}
}

func (h *ColumnHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	column, err := h.columnService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

func (h *ColumnHandler) Rename(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	columnID, ok := h.RequireParam(c, "columnId")
	if !ok {
		return
	}

	var req dto.RenameColumnRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	column, err := h.columnService.Rename(userID, columnID, req.Title)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

func (h *ColumnHandler) Reorder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReorderColumnsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.columnService.Reorder(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Columns reordered successfully"})
}

func (h *ColumnHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	columnID, ok := h.RequireParam(c, "columnId")
	if !ok {
		return
	}

	if err := h.columnService.Delete(userID, columnID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column and its cards deleted"})
}
