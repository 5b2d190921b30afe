package routes

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "hometheater_quote/docs"
	"hometheater_quote/internal/adapter/http/handlers"
	"hometheater_quote/internal/adapter/http/middleware"
	"hometheater_quote/internal/adapter/persistence/repository"
	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/infrastructure/auth"
	"hometheater_quote/internal/infrastructure/captcha"
	"hometheater_quote/internal/infrastructure/config"
	"hometheater_quote/internal/infrastructure/logging"
	"hometheater_quote/internal/infrastructure/notify"
	"hometheater_quote/internal/infrastructure/session"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/internal/usecase/interfaces"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logging.Must("info", "json").Fatal("failed to load configuration", zap.Error(err))
	}
	logger := logging.Must(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	ctx := context.Background()
	repo, closeRepo, err := repository.NewServiceRequestRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer closeRepo()

	router := gin.New()
	setMiddlewares(router, logger)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(ctx, router, cfg, repo, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config, repo interfaces.IServiceRequestRepository, logger *zap.Logger) {
	quoteUseCase := usecase.NewQuoteUseCase(
		entities.DefaultCatalog(),
		repo,
		newCaptchaVerifier(cfg.Captcha, logger),
		newNotifiers(ctx, cfg.Messaging, logger),
		logger,
	)
	serviceRequestUseCase := usecase.NewServiceRequestUseCase(repo, logger)
	authUseCase := usecase.NewAuthUseCase(
		auth.NewPasswordGate(cfg.Admin.Password, cfg.Admin.PasswordHash),
		session.NewJWTManager(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL),
		logger,
	)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, logger)
	serviceRequestHandler := handlers.NewServiceRequestHandler(serviceRequestUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, handlers.CookieSettings{
		Name:   session.CookieName,
		MaxAge: cfg.Admin.SessionTTL,
		Secure: cfg.Admin.SecureCookie,
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addAdminRoutes(v1, authHandler, serviceRequestHandler,
		middleware.AdminRequired(authUseCase, session.CookieName, cfg.Admin.LoginPath))
}

func newCaptchaVerifier(cfg config.CaptchaConfig, logger *zap.Logger) interfaces.ICaptchaVerifier {
	if cfg.Secret == "" {
		logger.Warn("RECAPTCHA_SECRET not set, only checking captcha token presence")
		return captcha.PresenceVerifier{}
	}
	return captcha.NewRecaptchaVerifier(cfg.Secret, cfg.VerifyURL, cfg.Timeout, logger)
}

func newNotifiers(ctx context.Context, cfg config.MessagingConfig, logger *zap.Logger) []interfaces.INotifier {
	notifiers := []interfaces.INotifier{notify.NewWhatsAppLinker(cfg.WhatsAppPhone)}
	if cfg.WhatsAppPhone == "" {
		logger.Warn("WHATSAPP_PHONE not set, submissions will not produce a WhatsApp link")
	}
	if cfg.SNSTopicARN != "" {
		alerter, err := notify.NewSNSAlerter(ctx, cfg.SNSRegion, cfg.SNSTopicARN, logger)
		if err != nil {
			logger.Error("SNS operator alerts disabled", zap.Error(err))
		} else {
			notifiers = append(notifiers, alerter)
		}
	}
	return notifiers
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
}
