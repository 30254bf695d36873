package httpresp

import "github.com/gin-gonic/gin"

// Responses mirror the shapes of the original API: listings are raw
// arrays, single records are raw objects, acks are {"message": ...}.

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func Message(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"message": msg})
}
