package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/VicJoao/CardapioRU/api"
	"github.com/VicJoao/CardapioRU/config"
	"github.com/VicJoao/CardapioRU/dao"
	filedao "github.com/VicJoao/CardapioRU/dao/file"
	redisdao "github.com/VicJoao/CardapioRU/dao/redis"
	"github.com/VicJoao/CardapioRU/db"
	"github.com/VicJoao/CardapioRU/extractor"
	"github.com/VicJoao/CardapioRU/menu"
	"github.com/VicJoao/CardapioRU/server"
	"github.com/VicJoao/CardapioRU/server/handlers"
	services "github.com/VicJoao/CardapioRU/service"
)

// Container holds all application dependencies.
type Container struct {
	MenuDAO              dao.MenuDAO
	TableExtractor       extractor.TableExtractor
	Pipeline             *menu.Pipeline
	MenuService          *services.MenuService
	MenuRefresherService *services.MenuRefresherService
	MenuHandler          *handlers.MenuHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	CardapioHttpServer   *server.CardapioHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	// Cache backend: Redis when configured, otherwise the on-disk file
	var menuDao dao.MenuDAO
	if addr := config.RedisAddr(); addr != "" {
		log.Printf("Using redis meals cache at %s", addr)
		ctx := context.Background()
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
		menuDao = redisdao.NewRedisMenuDAO(redisClient)
	} else {
		log.Printf("Using file meals cache at %s", config.MEALS_CACHE_FILE)
		menuDao = filedao.NewFileMenuDAO(config.MEALS_CACHE_FILE)
	}

	// Table extraction engine - fixture-backed mock outside prod
	var tableExtractor extractor.TableExtractor
	if env != "prod" {
		log.Printf("Using mock table extractor")
		tableExtractor = extractor.NewTableExtractorMock(config.GetResourcePath(config.RAW_TABLES_RESOURCE))
	} else {
		log.Printf("Using pdf table extractor")
		tableExtractor = extractor.NewPDFTableExtractor()
	}

	pipeline := menu.NewPipeline(tableExtractor)
	menuService := services.NewMenuService(menuDao)

	downloader := api.NewHTTPClient(config.DOWNLOAD_TIMEOUT_SECONDS * time.Second)

	plotPath := ""
	if config.PlotEnabled() {
		plotPath = config.PLOT_OUTPUT_PATH
	}

	menuRefresherService := services.NewMenuRefresherService(
		downloader,
		pipeline,
		menuService,
		config.PDFURL(),
		config.CARDAPIO_LOCAL_PATH,
		config.DOWNLOAD_TIMEOUT_SECONDS*time.Second,
		plotPath,
	)

	menuHandler := handlers.NewMenuHandler(menuService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(menuHandler, muxRouter)
	cardapioHttpServer := server.NewCardapioHttpServer(router, muxRouter, config.Port())

	return &Container{
		MenuDAO:              menuDao,
		TableExtractor:       tableExtractor,
		Pipeline:             pipeline,
		MenuService:          menuService,
		MenuRefresherService: menuRefresherService,
		MenuHandler:          menuHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		CardapioHttpServer:   cardapioHttpServer,
	}
}
