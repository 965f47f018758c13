package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	_ "presupuesto_svc/docs" // This will be auto-generated
	"presupuesto_svc/internal/adapter/http/handlers"
	repository2 "presupuesto_svc/internal/adapter/persistence/repository"
	"presupuesto_svc/internal/infrastructure/database"
	"presupuesto_svc/internal/infrastructure/queue"
	"presupuesto_svc/internal/usecase"

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

	baselineRepo := repository2.NewBaselineDynamoRepository(ddb)
	rubroRepo := repository2.NewRubroDynamoRepository(ddb)
	allocationRepo := repository2.NewAllocationDynamoRepository(ddb)
	taxonomyRepo := repository2.NewTaxonomyDynamoRepository(ddb)

	resolver := usecase.NewTaxonomyResolver(taxonomyRepo)
	materializerUseCase := usecase.NewMaterializerUseCase(baselineRepo, rubroRepo, allocationRepo, resolver)

	// Queue wiring is optional: without a URL, the HTTP trigger and the
	// backfill CLI remain the only entry points.
	if queueURL := os.Getenv("MATERIALIZER_QUEUE_URL"); queueURL != "" {
		consumer, err := queue.NewSQSConsumer(context.Background(), queueURL, materializerUseCase)
		if err != nil {
			log.Printf("Materializer queue consumer not configured: %v", err)
		} else {
			go consumer.Start(context.Background())
		}
	}

	materializeHandler := handlers.NewMaterializeHandler(materializerUseCase)
	queryHandler := handlers.NewBudgetQueryHandler(rubroRepo, allocationRepo)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, materializeHandler, queryHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
