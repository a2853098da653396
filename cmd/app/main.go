package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/draftwerk/studiohub/internal/blogservice"
	"github.com/draftwerk/studiohub/internal/clientservice"
	"github.com/draftwerk/studiohub/internal/common"
	"github.com/draftwerk/studiohub/internal/engageservice"
	"github.com/draftwerk/studiohub/internal/mailservice"
	"github.com/draftwerk/studiohub/internal/mediaservice"
	"github.com/draftwerk/studiohub/internal/projectservice"
	"github.com/draftwerk/studiohub/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	userService    *userservice.UserService
	blogService    *blogservice.BlogService
	projectService *projectservice.ProjectService
	engageService  *engageservice.EngageService
	clientService  *clientservice.ClientService
	mediaService   *mediaservice.MediaService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupEngagementExchange(broker)
	if err != nil {
		logger.Error("failed to setup the engagement exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cipher, err := clientservice.NewCipher(cfg.CryptoKey)
	if err != nil {
		logger.Error("failed to initialize the credential cipher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:         cfg,
		logger:         logger,
		userService:    userservice.NewUserService(db),
		blogService:    blogservice.NewBlogService(db, cache),
		projectService: projectservice.NewProjectService(db),
		engageService:  engageservice.NewEngageService(db, broker),
		clientService:  clientservice.NewClientService(db, cipher),
		mediaService:   mediaservice.NewMediaService(cfg.Media.BaseURL, cfg.Media.UploadPreset),
		mailService:    mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.OwnerEmail, cfg.Mail.Port, logger),
		broker:         broker,
	}
	defer app.mailService.Close()

	// Start the engagement consumers
	app.mailService.SendContactNotifications()
	app.mailService.SendEnquiryNotifications()
	app.mailService.SendWelcomeEmails()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
