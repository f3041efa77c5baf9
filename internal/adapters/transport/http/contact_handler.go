package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/middleware"
	contactsvc "github.com/webcontacts/contacts-api/internal/contacts/service"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

type ContactHandler struct {
	svc contactsvc.Service
}

func NewContactHandler(svc contactsvc.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := repo.ContactFilter{
		Limit:     limit,
		Offset:    offset,
		Name:      c.Query("name"),
		LastName:  c.Query("last_name"),
		Email:     c.Query("email"),
		Birthdays: c.Query("birthdays") == "true",
	}

	contacts, err := h.svc.List(c.Request.Context(), user.ID, filter)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]dto.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		resp = append(resp, dto.NewContactResponse(contact))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	contact, err := h.svc.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContactResponse(contact))
}

func (h *ContactHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}
	var body dto.ContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.svc.Create(c.Request.Context(), user.ID, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewContactResponse(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}
	var body dto.ContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.svc.Update(c.Request.Context(), id, user.ID, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContactResponse(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": customErrors.ErrInvalidToken.Error()})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, user.ID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
