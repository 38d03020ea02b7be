package helpers

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Token   string      `json:"token,omitempty"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, Response{
		Success: false,
		Msg:     customMessage,
	})
}

func RespondWithDetail(c *gin.Context, statusCode int, customMessage string, err error) {
	c.JSON(statusCode, Response{
		Success: false,
		Msg:     customMessage,
		Error:   err.Error(),
	})
}

func RespondWithData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Msg:     message,
		Data:    data,
	})
}

func RespondWithToken(c *gin.Context, statusCode int, message string, data interface{}, token string) {
	c.JSON(statusCode, Response{
		Success: true,
		Msg:     message,
		Data:    data,
		Token:   token,
	})
}
