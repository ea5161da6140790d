package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eliezerclean/config"
	"eliezerclean/handlers"
	"eliezerclean/middleware"
	"eliezerclean/routes"
	"eliezerclean/services/assistant"
	"eliezerclean/services/booking"
	"eliezerclean/services/contact"
	dispatch "eliezerclean/services/mail"
	"eliezerclean/services/prefs"
	"eliezerclean/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionCache := utils.GetSessionCacheClient()
	assistCache := utils.GetAssistantCacheClient()
	prefsCache := utils.GetPrefsCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Email dispatcher. Without a SendGrid key submissions are only logged.
	var dispatcher dispatch.Dispatcher
	if sg := dispatch.NewSendGridDispatcher(dispatch.SendGridConfig{
		APIKey:    config.AppConfig.SendGridAPIKey,
		FromEmail: config.AppConfig.MailFromEmail,
		FromName:  config.AppConfig.MailFromName,
	}, logger); sg != nil {
		dispatcher = sg
	} else {
		logger.Warn("main: SendGrid key missing, using stub dispatcher")
		dispatcher = dispatch.NewStubDispatcher(logger)
	}

	bookingService := &booking.DefaultBookingSessionService{
		Cache:      sessionCache,
		Dispatcher: dispatcher,
		Inbox:      config.AppConfig.BookingInbox,
		TTL:        time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Logger:     logger,
	}

	contactService := &contact.DefaultContactService{
		Dispatcher: dispatcher,
		Inbox:      config.AppConfig.BookingInbox,
		Logger:     logger,
	}

	var geminiClient *assistant.GeminiClient
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := assistant.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Warnf("main: failed to initialize Gemini client, using local responder: %v", err)
		} else {
			geminiClient = client
		}
	}
	assistantService := &assistant.DefaultAssistantService{
		Gemini: geminiClient,
		Local:  &assistant.LocalResponder{Delay: time.Second},
		Store:  assistant.NewRedisContextStore(assistCache, 30*time.Minute),
		Logger: logger,
	}

	prefsStore := &prefs.Store{Client: prefsCache}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	aiHandler := handlers.NewAIHandler(assistantService, logger)
	prefsHandler := handlers.NewPrefsHandler(prefsStore, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking wizard endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		UpdateSession:   bookingHandler.UpdateSession,
		AdvanceSession:  bookingHandler.AdvanceSession,
		BackSession:     bookingHandler.BackSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,

		// Catalog endpoints.
		GetServices:     catalogHandler.GetServices,
		GetServiceTypes: catalogHandler.GetServiceTypes,
		GetAvailability: catalogHandler.GetAvailability,

		// Contact endpoints.
		SubmitContact:      contactHandler.SubmitContact,
		GetContactSubjects: contactHandler.GetContactSubjects,

		// Assistant endpoints.
		AIChatHandler:   aiHandler.AIChatHandler,
		AIStatusHandler: aiHandler.AIStatusHandler,

		// Preference endpoints.
		GetPreferences: prefsHandler.GetPreferences,
		SetPreferences: prefsHandler.SetPreferences,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{sessionCache, assistCache, prefsCache})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
