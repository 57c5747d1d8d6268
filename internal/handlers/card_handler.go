package handlers

import (
	"net/http"

	"taskflow_backend/internal/services"
	"taskflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	*BaseHandler
	cardService services.CardService
}

func NewCardHandler(base *BaseHandler, cardService services.CardService) *CardHandler {
	return &CardHandler{
		BaseHandler: base,
		cardService: cardService,
	}
}

func (h *CardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	{
		cards.POST("", h.Create)
		cards.POST("/move", h.Move)
		cards.PATCH("/:cardId", h.Update)
		cards.POST("/:cardId/comment", h.AddComment)
		cards.DELETE("/:cardId", h.Delete)
	}
}

func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	card, err := h.cardService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.MoveCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.cardService.Move(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card moved"})
}

func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cardID, ok := h.RequireParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	card, err := h.cardService.Update(userID, cardID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) AddComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cardID, ok := h.RequireParam(c, "cardId")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.cardService.AddComment(userID, cardID, req.Text)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cardID, ok := h.RequireParam(c, "cardId")
	if !ok {
		return
	}

	if err := h.cardService.Delete(userID, cardID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}
