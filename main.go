package main

import (
	"github.com/dilshat/campaign-sender/controller"
	"github.com/dilshat/campaign-sender/dao"
	_ "github.com/dilshat/campaign-sender/docs"
	"github.com/dilshat/campaign-sender/hub"
	"github.com/dilshat/campaign-sender/log"
	"github.com/dilshat/campaign-sender/service"
	"github.com/dilshat/campaign-sender/util"
	"github.com/dilshat/campaign-sender/wa"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Campaign sender HTTP API
// @description WhatsApp campaign broadcast and conversation relay

// @contact.name Dilshat Aliev
// @contact.email dilshat.aliev@gmail.com

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Error.Println(err)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	//create db client
	dbClient, err := dao.GetClient(util.GetEnv("DB_PATH", "campaign.db"))
	if err != nil {
		log.Fatal(err)
	}

	//create messaging provider client
	gateway := wa.NewClient(
		util.GetEnv("GRAPH_API_URL", "https://graph.facebook.com/v19.0"),
		util.GetEnv("ACCESS_TOKEN", ""),
		util.GetEnv("PHONE_NUMBER_ID", ""),
		util.GetEnv("LANGUAGE_CODE", "en_US"),
		util.GetEnvAsInt("HTTP_TIMEOUT_SEC", 10))

	//progress events fan-out, shared by the dispatcher and the websocket endpoint
	eventHub := hub.NewHub()

	campaignService := service.NewService(
		gateway,
		dao.NewMessageDao(dbClient),
		dao.NewTemplateDao(dbClient),
		eventHub,
		util.GetEnv("VERIFY_TOKEN", ""),
		util.GetEnvAsInt("SEND_INTERVAL_MS", 1000),
	)

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	bindRoutes(e, campaignService, eventHub)

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "8080")))
}

func bindRoutes(e *echo.Echo, srv service.Service, eventHub hub.Hub) {

	e.POST("/start-campaign", controller.GetStartCampaignFunc(srv))

	e.GET("/conversations", controller.GetConversationsFunc(srv))
	e.GET("/conversations/:id", controller.GetConversationHistoryFunc(srv))
	e.POST("/conversations/:id/reply", controller.GetReplyFunc(srv))

	e.GET("/templates", controller.GetTemplatesFunc(srv))
	e.POST("/templates", controller.GetCreateTemplateFunc(srv))
	e.PUT("/templates/:id", controller.GetUpdateTemplateFunc(srv))
	e.DELETE("/templates/:id", controller.GetDeleteTemplateFunc(srv))

	e.GET("/whatsapp-webhook", controller.GetVerifyWebhookFunc(srv))
	e.POST("/whatsapp-webhook", controller.GetIncomingWebhookFunc(srv))

	e.GET("/ws/log", controller.GetEventsWebsocketFunc(eventHub))

	//frontend, must stay the last route
	e.Static("/", "static")
}
