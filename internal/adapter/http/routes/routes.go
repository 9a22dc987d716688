package routes

import (
	"context"
	_ "labelpress/docs" // This will be auto-generated
	"labelpress/internal/adapter/http/handlers"
	repository2 "labelpress/internal/adapter/persistence/repository"
	"labelpress/internal/infrastructure/database"
	"labelpress/internal/usecase"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	if database.ProvisionEnabled() {
		if err := database.EnsureTables(context.Background(), ddb); err != nil {
			log.Fatalf("Failed to provision tables: %v", err)
		}
	}

	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	printerRepo := repository2.NewPrinterDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	labelRepo := repository2.NewLabelDynamoRepository(ddb)
	lotRepo := repository2.NewLotDynamoRepository(ddb)
	ruleRepo := repository2.NewPrintRuleDynamoRepository(ddb)
	recordRepo := repository2.NewPrintRecordDynamoRepository(ddb)

	if database.DevSeedEnabled() {
		database.SeedDevData(context.Background(), database.SeedRepositories{
			Machines:  machineRepo,
			Printers:  printerRepo,
			Employees: employeeRepo,
			Labels:    labelRepo,
			Lots:      lotRepo,
			Rules:     ruleRepo,
		})
	}

	printUseCase := usecase.NewPrintAuthorizationUseCase(machineRepo, printerRepo, employeeRepo, labelRepo, lotRepo, ruleRepo, recordRepo)

	printHandler := handlers.NewPrintHandler(printUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPrintRoutes(v1, printHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
