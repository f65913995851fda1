package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	salesEvents "sales/src/sales/application/events"
	salesUseCase "sales/src/sales/application/usecase"
	"sales/src/sales/domain/port"
	salesBus "sales/src/sales/infrastructure/bus"
	salesCache "sales/src/sales/infrastructure/cache"
	salesController "sales/src/sales/infrastructure/controller"
	salesEventStore "sales/src/sales/infrastructure/eventstore"
	salesPersistence "sales/src/sales/infrastructure/persistence"
	sharedConfig "sales/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	log.Println("🚀 Sales Service - Iniciando...")

	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for Sales service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Sales service")
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok", "service": "sales"})
	})

	// Conectar a la base de datos de ventas
	log.Printf("Intentando conectar a sales_db: %s", cfg.PostgresConnString())
	db, err := sql.Open("postgres", cfg.PostgresConnString())
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Println("✅ Conexión a sales_db establecida con éxito")

	// Cache Redis: si no está disponible solo se pierde el camino rápido
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Printf("⚠️  Advertencia: Redis no disponible: %v", err)
		log.Println("⚠️  Continuando sin cache")
	} else {
		log.Println("✅ Conexión a Redis establecida con éxito")
	}
	cancel()

	// Bus de eventos en proceso + auditoría en MongoDB
	eventBus := salesBus.NewInMemoryEventBus()

	mongoCtx, cancelMongo := context.WithTimeout(context.Background(), 5*time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err == nil {
		err = mongoClient.Ping(mongoCtx, readpref.Primary())
	}
	cancelMongo()

	if err != nil {
		log.Printf("⚠️  Advertencia: MongoDB no disponible: %v", err)
		log.Println("⚠️  Continuando sin auditoría de eventos")
	} else {
		log.Println("✅ Conexión a MongoDB establecida con éxito")
		eventStore := salesEventStore.NewMongoEventStore(mongoClient.Database(cfg.MongoDatabase))
		salesEvents.NewAuditEventHandlers(eventStore).Register(eventBus)
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")
	setupSalesModule(v1, db, redisClient, eventBus)

	log.Printf("✅ Servidor Sales Service iniciado en http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, redisClient *redis.Client, eventBus port.EventBus) {
	log.Println("Configurando módulo Sales...")

	saleRepo := salesPersistence.NewSalePostgresRepository(db)
	cacheService := salesCache.NewRedisCacheService(redisClient)

	createSaleUC := salesUseCase.NewCreateSaleUseCase(saleRepo, eventBus)
	getSaleUC := salesUseCase.NewGetSaleUseCase(saleRepo, cacheService)
	listSalesUC := salesUseCase.NewListSalesUseCase(saleRepo)
	updateSaleUC := salesUseCase.NewUpdateSaleUseCase(saleRepo, eventBus, cacheService)
	cancelSaleUC := salesUseCase.NewCancelSaleUseCase(saleRepo, eventBus, cacheService)
	deleteSaleUC := salesUseCase.NewDeleteSaleUseCase(saleRepo, eventBus, cacheService)

	saleCtrl := salesController.NewSaleController(createSaleUC, getSaleUC, listSalesUC, updateSaleUC, cancelSaleUC, deleteSaleUC)
	saleCtrl.RegisterRoutes(router)
}
