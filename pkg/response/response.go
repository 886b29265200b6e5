package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKWithWarnings sends 200 JSON with data and non-fatal warnings attached.
func OKWithWarnings(c *gin.Context, data any, warnings any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
		Warnings:  warnings,
	})
}

// Error sends a 400 response with the error message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// ErrorWithStatus sends an error response with an explicit HTTP status.
func ErrorWithStatus(c *gin.Context, status int, err error) {
	c.JSON(status, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// InternalError sends 500 without leaking internals.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 for rate-limited clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
