package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "casamenteiro/docs" // This will be auto-generated
	"casamenteiro/internal/adapter/http/handlers"
	"casamenteiro/internal/adapter/persistence/repository"
	"casamenteiro/internal/infrastructure/database"
	"casamenteiro/internal/infrastructure/seed"
	"casamenteiro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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
	db := database.ConnectSQLite()

	personRepo := repository.NewPersonGormRepository(db)
	coupleRepo := repository.NewCoupleGormRepository(db)
	categoryRepo := repository.NewCategoryGormRepository(db)
	catalogItemRepo := repository.NewCatalogItemGormRepository(db)
	demandRepo := repository.NewDemandGormRepository(db)
	quoteRepo := repository.NewQuoteGormRepository(db)
	txManager := repository.NewGormTxManager(db)

	if dir := os.Getenv("SEED_DIR"); dir != "" {
		loader := seed.NewLoader(personRepo, coupleRepo, categoryRepo, catalogItemRepo)
		if err := loader.Run(context.Background(), dir); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	coupleUseCase := usecase.NewCoupleUseCase(coupleRepo, personRepo)
	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, catalogItemRepo, personRepo)
	demandUseCase := usecase.NewDemandUseCase(demandRepo, coupleRepo, categoryRepo, catalogItemRepo, personRepo, txManager)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, demandRepo, coupleRepo, personRepo, txManager)

	coupleHandler := handlers.NewCoupleHandler(coupleUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	demandHandler := handlers.NewDemandHandler(demandUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, coupleHandler, catalogHandler, demandHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request with an id so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
