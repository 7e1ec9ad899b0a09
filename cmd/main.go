package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	bookLessonHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/book_lesson"
	cancelClassRegistrationHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/cancel_class_registration"
	cancelLessonHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/cancel_lesson"
	createSlotHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/create_slot"
	getBookingHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/get_booking"
	getClassesHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/get_classes"
	getCreditsHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/get_credits"
	getTrainersHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/get_trainers"
	getUserBookingsHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/get_user_bookings"
	grantCreditsHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/grant_credits"
	manageClassesHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/manage_classes"
	paymentMethodsHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/payment_methods"
	profileHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/profile"
	purchaseCreditsHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/purchase_credits"
	registerForClassHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/register_for_class"
	waiversHandler "github.com/m04kA/SMC-VolleyballService/internal/api/handlers/waivers"
	"github.com/m04kA/SMC-VolleyballService/internal/api/middleware"
	"github.com/m04kA/SMC-VolleyballService/internal/config"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/class"
	creditRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-VolleyballService/internal/infra/storage/docstore"
	scheduleRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-VolleyballService/internal/infra/storage/user"
	functionsClient "github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	bookingsService "github.com/m04kA/SMC-VolleyballService/internal/service/bookings"
	classesService "github.com/m04kA/SMC-VolleyballService/internal/service/classes"
	creditsService "github.com/m04kA/SMC-VolleyballService/internal/service/credits"
	paymentsService "github.com/m04kA/SMC-VolleyballService/internal/service/payments"
	profileService "github.com/m04kA/SMC-VolleyballService/internal/service/profile"
	trainersService "github.com/m04kA/SMC-VolleyballService/internal/service/trainers"
	waiversService "github.com/m04kA/SMC-VolleyballService/internal/service/waivers"
	bookLessonUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/book_lesson"
	cancelClassRegistrationUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_class_registration"
	cancelLessonUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_lesson"
	grantCreditsUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/grant_credits"
	purchaseCreditsUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/purchase_credits"
	registerForClassUC "github.com/m04kA/SMC-VolleyballService/internal/usecase/register_for_class"
	"github.com/m04kA/SMC-VolleyballService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VolleyballService/pkg/logger"
	"github.com/m04kA/SMC-VolleyballService/pkg/metrics"
	"github.com/m04kA/SMC-VolleyballService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VolleyballService/pkg/txmanager"
)

// eventPublisher публикация событий с закрытием при остановке
type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VolleyballService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if cfg.Database.Driver == config.DriverSQLite {
		psqlbuilder.UseQuestionPlaceholders()
	}

	// Проверяем соединение с повторами
	err = retry.Do(
		func() error {
			return db.Ping()
		},
		retry.Attempts(cfg.Database.ConnectAttempts),
		retry.Delay(time.Duration(cfg.Database.ConnectDelay)*time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("Database ping attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	// Обёртка с метриками; без метрик работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Документное хранилище
	store := docstore.NewRepository(wrappedDB, txmanager.NewTransactionManager(wrappedDB))
	if err := store.Migrate(context.Background()); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store)
	creditRepository := creditRepo.NewRepository(store)
	scheduleRepository := scheduleRepo.NewRepository(store)
	classRepository := classRepo.NewRepository(store)
	userRepository := userRepo.NewRepository(store)

	// Клиент шлюза удаленных процедур
	functions := functionsClient.NewClient(
		cfg.Functions.URL,
		time.Duration(cfg.Functions.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Functions client initialized (url=%s timeout=%ds)", cfg.Functions.URL, cfg.Functions.Timeout)

	// Публикация событий (если Kafka включена)
	var publisher eventPublisher = events.Nop{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewPublisher(events.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			Version:      cfg.Kafka.Version,
			FlushTimeout: 5 * time.Second,
		}, metricsCollector, log)
		if err != nil {
			log.Fatal("Failed to create event publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Kafka publisher enabled (topic=%s)", cfg.Kafka.Topic)
	}

	gate := action.NewGate()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	creditSvc := creditsService.NewService(creditRepository, log)
	classSvc := classesService.NewService(classRepository, userRepository, log)
	trainerSvc := trainersService.NewService(scheduleRepository, userRepository, log)
	profileSvc := profileService.NewService(userRepository, log)
	paymentSvc := paymentsService.NewService(functions, log)
	waiverSvc := waiversService.NewService(userRepository, log)

	// Инициализируем use cases
	bookLessonUseCase := bookLessonUC.NewUseCase(
		scheduleRepository,
		creditRepository,
		functions,
		gate,
		publisher,
		metricsCollector,
		log,
	)
	cancelLessonUseCase := cancelLessonUC.NewUseCase(
		bookingRepository,
		creditRepository,
		functions,
		gate,
		publisher,
		metricsCollector,
		log,
	)
	registerForClassUseCase := registerForClassUC.NewUseCase(
		classRepository,
		creditRepository,
		functions,
		gate,
		publisher,
		metricsCollector,
		log,
	)
	cancelClassRegistrationUseCase := cancelClassRegistrationUC.NewUseCase(
		classRepository,
		functions,
		gate,
		publisher,
		metricsCollector,
		log,
	)
	purchaseCreditsUseCase := purchaseCreditsUC.NewUseCase(
		creditRepository,
		functions,
		gate,
		publisher,
		metricsCollector,
		log,
	)
	grantCreditsUseCase := grantCreditsUC.NewUseCase(
		creditRepository,
		userRepository,
		gate,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	bookLesson := bookLessonHandler.NewHandler(bookLessonUseCase, log)
	cancelLesson := cancelLessonHandler.NewHandler(cancelLessonUseCase, log)
	registerForClass := registerForClassHandler.NewHandler(registerForClassUseCase, log)
	cancelClassRegistration := cancelClassRegistrationHandler.NewHandler(cancelClassRegistrationUseCase, log)
	purchaseCredits := purchaseCreditsHandler.NewHandler(purchaseCreditsUseCase, log)
	grantCredits := grantCreditsHandler.NewHandler(grantCreditsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCredits := getCreditsHandler.NewHandler(creditSvc, log)
	getClasses := getClassesHandler.NewHandler(classSvc, log)
	manageClasses := manageClassesHandler.NewHandler(classSvc, log)
	getTrainers := getTrainersHandler.NewHandler(trainerSvc, log)
	createSlot := createSlotHandler.NewHandler(trainerSvc, log)
	profile := profileHandler.NewHandler(profileSvc, log)
	paymentMethods := paymentMethodsHandler.NewHandler(paymentSvc, log)
	waivers := waiversHandler.NewHandler(waiverSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Цены кредитов
	public.HandleFunc("/prices", paymentMethods.HandlePrices).Methods(http.MethodGet)

	// --- Тренеры ---
	public.HandleFunc("/trainers", getTrainers.HandleList).Methods(http.MethodGet)
	public.HandleFunc("/trainers/{trainerId}", getTrainers.HandleGet).Methods(http.MethodGet)
	public.HandleFunc("/trainers/{trainerId}/slots", getTrainers.HandleSlots).Methods(http.MethodGet)

	// --- Групповые занятия (isRegistered только для вошедших) ---
	public.HandleFunc("/classes", getClasses.HandleList).Methods(http.MethodGet)
	public.HandleFunc("/classes/{classId}", getClasses.HandleGet).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Индивидуальные занятия ---
	protected.HandleFunc("/lessons/book", bookLesson.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelLesson.Handle).Methods(http.MethodPost)

	// --- Групповые занятия ---
	protected.HandleFunc("/classes/{classId}/register", registerForClass.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/classes/{classId}/cancel", cancelClassRegistration.Handle).Methods(http.MethodPost)

	// --- Кредиты и оплата ---
	protected.HandleFunc("/credits", getCredits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/intents", purchaseCredits.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/payments/complete", purchaseCredits.HandleComplete).Methods(http.MethodPost)
	protected.HandleFunc("/payments/methods", paymentMethods.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/payments/methods/{paymentMethodId}", paymentMethods.HandleDetach).Methods(http.MethodDelete)

	// --- Профиль и документы ---
	protected.HandleFunc("/profile", profile.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profile.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/waivers", waivers.HandleStatus).Methods(http.MethodGet)
	protected.HandleFunc("/waivers", waivers.HandleSign).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (роль проверяется по профилю)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	admin.HandleFunc("/credits", grantCredits.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/classes", manageClasses.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/classes/{classId}", manageClasses.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/classes/{classId}", manageClasses.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/classes/{classId}/participants", manageClasses.HandleParticipants).Methods(http.MethodGet)
	admin.HandleFunc("/trainers/{trainerId}/slots", createSlot.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер; CORS оборачивает весь роутер, у preflight запросов нет маршрутов
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Отправляем накопленные события
	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
