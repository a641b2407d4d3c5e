package bootstrap

import (
	"time"

	"noteshare-be/internal/config"
	"noteshare-be/internal/controller"
	"noteshare-be/internal/pkg/logger"
	"noteshare-be/internal/pkg/mailer"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/repository/memory"
	"noteshare-be/internal/repository/unitofwork"
	"noteshare-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const auditTopic = "noteshare.events"

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	NoteController     controller.INoteController
	CategoryController controller.ICategoryController
	CommentController  controller.ICommentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	serverutils.ConfigureJWTSecret(cfg.App.JWTSecret)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(auditTopic, pubSub)
	consumerService := service.NewAuditConsumerService(pubSub, auditTopic, uowFactory)

	// 3. In-Memory Listing Cache
	listingCache := memory.NewListingCache(30 * time.Second)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, publisherService, cfg.App.BaseURL)
	userService := service.NewUserService(uowFactory, publisherService, cfg.App.UploadDir)
	noteService := service.NewNoteService(uowFactory, listingCache, publisherService)
	categoryService := service.NewCategoryService(uowFactory, listingCache)
	commentService := service.NewCommentService(uowFactory)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		NoteController:     controller.NewNoteController(noteService),
		CategoryController: controller.NewCategoryController(categoryService),
		CommentController:  controller.NewCommentController(commentService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
