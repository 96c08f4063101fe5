package handler

import (
	"net/http"
	"strconv"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

// Handler is the thin HTTP layer over the book service. It never writes
// error responses itself; every failure is handed to the error-normalizer
// middleware via c.Error.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /v1/books?page=&limit=
func (h *Handler) ListBooks(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"))
	limit := parsePositiveInt(c.Query("limit"))

	result, err := h.service.ListBooks(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessList(c, result.Books, result.TotalBooks, result.TotalPages, result.CurrentPage)
}

// CreateBook - POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := utils.BindJSONStrict(c.Request, &req); err != nil {
		c.Error(&apperror.Error{
			Code:    apperror.ValidationErrorCode,
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// UpdateBook - PUT /v1/books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := utils.BindJSONStrict(c.Request, &req); err != nil {
		c.Error(&apperror.Error{
			Code:    apperror.ValidationErrorCode,
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// DeleteBook - DELETE /v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	book, err := h.service.DeleteBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// parsePositiveInt returns 0 for absent or invalid values; the service
// substitutes its defaults.
func parsePositiveInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
