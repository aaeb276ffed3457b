package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"testpark/internal/controllers"
	"testpark/internal/repositories"
	"testpark/internal/services"
	"testpark/pkg/config"
	"testpark/pkg/middleware"
	"testpark/pkg/service"
)

type Loggers struct {
	Main    *zap.Logger
	Auth    *zap.Logger
	Order   *zap.Logger
	Company *zap.Logger
	Report  *zap.Logger
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	orderRepo := repositories.NewOrderRepository(dbConn, loggers.Order)
	companyRepo := repositories.NewCompanyRepository(dbConn)
	groupPurchaseRepo := repositories.NewGroupPurchaseRepository(dbConn)
	historyRepo := repositories.NewHistoryRepository(dbConn)
	memoRepo := repositories.NewMemoRepository(dbConn)
	quoteLinkRepo := repositories.NewQuoteLinkRepository(dbConn)
	templateRepo := repositories.NewMessageTemplateRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	orderService := services.NewOrderService(orderRepo, historyRepo, memoRepo, quoteLinkRepo, txManager, loggers.Order)
	assignmentService := services.NewAssignmentService(orderRepo, companyRepo, groupPurchaseRepo, historyRepo, txManager, loggers.Order)
	companyService := services.NewCompanyService(companyRepo, loggers.Company)
	groupPurchaseService := services.NewGroupPurchaseService(groupPurchaseRepo, loggers.Company)
	templateService := services.NewMessageTemplateService(templateRepo, orderRepo, cacheRepo, cfg.Cache.DictionaryTTL, loggers.Main)
	historyService := services.NewHistoryService(orderRepo, historyRepo, memoRepo, quoteLinkRepo, loggers.Order)
	authService := services.NewAuthService(userRepo, jwtSvc, loggers.Auth)
	reportService := services.NewReportService(reportRepo, orderRepo, loggers.Report)

	orderCtrl := controllers.NewOrderController(orderService, historyService, loggers.Order)
	companyCtrl := controllers.NewCompanyController(companyService, assignmentService, loggers.Company)
	groupPurchaseCtrl := controllers.NewGroupPurchaseController(groupPurchaseService, loggers.Company)
	templateCtrl := controllers.NewMessageTemplateController(templateService, loggers.Main)
	authCtrl := controllers.NewAuthController(authService, loggers.Auth)
	reportCtrl := controllers.NewReportController(reportService, loggers.Report)

	runAuthRouter(api, authCtrl)

	secureGroup := api.Group("", authMW.Auth)
	runOrderRouter(secureGroup, orderCtrl)
	runCompanyRouter(secureGroup, companyCtrl)
	runGroupPurchaseRouter(secureGroup, groupPurchaseCtrl)
	runTemplateRouter(secureGroup, templateCtrl)
	runReportRouter(secureGroup, reportCtrl)

	loggers.Main.Info("라우터 초기화 완료")
}
