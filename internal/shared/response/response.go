package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the uniform success envelope.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ListBody extends the envelope with pagination metadata for list endpoints.
type ListBody struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	TotalBooks  int         `json:"totalBooks"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// ErrorBody is the uniform error shape produced by the normalizer. Every
// failed request, whatever its origin, is rendered as exactly this.
type ErrorBody struct {
	Success bool     `json:"success"`
	Status  int      `json:"status"`
	Type    string   `json:"type,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Body{
		Success: true,
		Data:    data,
	})
}

func SuccessList(c *gin.Context, data interface{}, totalBooks, totalPages, currentPage int) {
	c.JSON(200, ListBody{
		Success:     true,
		Data:        data,
		TotalBooks:  totalBooks,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	})
}
