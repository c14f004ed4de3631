package routes

import (
	"log"
	"os"
	"strconv"

	_ "construtora_xpto/docs" // This will be auto-generated
	"construtora_xpto/internal/adapter/http/handlers"
	repository2 "construtora_xpto/internal/adapter/persistence/repository"
	"construtora_xpto/internal/infrastructure/database"
	"construtora_xpto/internal/infrastructure/payments"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/internal/usecase/interfaces"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	expenseRepo := repository2.NewGeneralExpenseDynamoRepository(ddb)
	servicePaymentRepo := repository2.NewServicePaymentDynamoRepository(ddb)
	budgetRepo := repository2.NewPendingBudgetDynamoRepository(ddb)
	stageRepo := repository2.NewScheduleStageDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	dashboardUseCase := usecase.NewDashboardUseCase(
		projectRepo, serviceRepo, expenseRepo, servicePaymentRepo, budgetRepo, stageRepo,
		usecase.NewLedgerUseCase(),
		usecase.NewRollupUseCase(),
		usecase.NewSummaryUseCase(usecase.DefaultReleasePolicy()),
		usecase.NewScheduleUseCase(),
	)
	paymentUseCase := usecase.NewPaymentUseCase(expenseRepo, servicePaymentRepo, paymentGateway)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, expenseRepo)
	recordUseCase := usecase.NewRecordUseCase(projectRepo, serviceRepo, expenseRepo, servicePaymentRepo, stageRepo)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	recordHandler := handlers.NewRecordHandler(recordUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addObraRoutes(v1, dashboardHandler, paymentHandler, budgetHandler, recordHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
