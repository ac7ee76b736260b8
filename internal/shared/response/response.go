package response

import (
	"github.com/gin-gonic/gin"
)

// The wire contract is a flat {"message": ...} body for every outcome
// except GET lists (bare arrays) and DELETE confirmations (a bare JSON
// string). These helpers keep handlers from hand-rolling gin.H maps.

type MessageBody struct {
	Message string `json:"message"`
}

// Message writes {"message": msg} with the given status code.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageBody{Message: msg})
}

// List writes a bare JSON array.
func List(c *gin.Context, statusCode int, items interface{}) {
	c.JSON(statusCode, items)
}

// Reply writes a bare JSON string, used by the delete confirmations.
func Reply(c *gin.Context, statusCode int, reply string) {
	c.JSON(statusCode, reply)
}

func BadRequest(c *gin.Context, msg string) {
	Message(c, 400, msg)
}

func NotFound(c *gin.Context, msg string) {
	Message(c, 404, msg)
}

func Conflict(c *gin.Context, msg string) {
	Message(c, 409, msg)
}

func InternalServerError(c *gin.Context, msg string) {
	Message(c, 500, msg)
}
