package routes

import (
	"labelpress/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrint = "/print"
)

func addPrintRoutes(rg *gin.RouterGroup, printHandler *handlers.PrintHandler) {
	printing := rg.Group(PathPrint)
	{
		printing.POST("/request", printHandler.RequestPrint)
		printing.POST("/confirm", printHandler.ConfirmPrint)
		printing.GET("/records/:id", printHandler.GetPrintRecord)
		printing.GET("/health", handlers.Health)
	}
}
