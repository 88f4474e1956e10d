package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/audit"
	"github.com/barberflow/barberflow-api/internal/config"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/handlers"
	"github.com/barberflow/barberflow-api/internal/infra/repository"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/storage"
	usecase "github.com/barberflow/barberflow-api/internal/usecase/appointment"
)

// RegisterRoutes monta o grafo de dependências e registra todos os endpoints.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, slots domain.SlotIndex, cfg *config.Config) {
	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	uploader := storage.NewS3Uploader(cfg)

	createUC := usecase.NewCreateAppointment(repo, slots, dispatcher)
	updateUC := usecase.NewUpdateAppointment(repo, slots, dispatcher)
	listUC := usecase.NewListAppointments(repo)
	availabilityUC := usecase.NewGetAvailability(repo, cfg.OpenTime, cfg.CloseTime, cfg.SlotMinutes)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)
	agendamentoHandler := handlers.NewAgendamentoHandler(createUC, updateUC, listUC)
	servicoHandler := handlers.NewServicoHandler(db)
	barbeiroHandler := handlers.NewBarbeiroHandler(db, availabilityUC)
	financeiroHandler := handlers.NewFinanceiroHandler(db)
	auditoriaHandler := handlers.NewAuditoriaHandler(db)

	api := r.Group("/api")
	if rdb != nil {
		api.Use(middleware.RateLimiter(rdb, cfg.RateLimit, time.Minute))
	}

	// ---- público ----
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/servicos", servicoHandler.List)
	api.GET("/servicos/:id", servicoHandler.Get)
	api.GET("/barbeiros", barbeiroHandler.List)
	api.GET("/barbeiros/:id", barbeiroHandler.Get)
	api.GET("/barbeiros/:id/disponibilidade", barbeiroHandler.Disponibilidade)

	// ---- autenticado ----
	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))

	secured.GET("/me", meHandler.GetMe)
	secured.PATCH("/me/foto", meHandler.UpdateFoto)

	secured.GET("/agendamentos", agendamentoHandler.List)
	secured.POST("/agendamentos", agendamentoHandler.Create)
	secured.PATCH("/agendamentos/:id", agendamentoHandler.Update)

	// ---- gerência ----
	gerencia := secured.Group("")
	gerencia.Use(middleware.RequireRole(domain.RoleManager))

	gerencia.POST("/servicos", servicoHandler.Create)
	gerencia.PUT("/servicos/:id", servicoHandler.Update)
	gerencia.DELETE("/servicos/:id", servicoHandler.Delete)
	gerencia.POST("/barbeiros", barbeiroHandler.Create)
	gerencia.GET("/financeiro/dashboard", financeiroHandler.Dashboard)
	gerencia.GET("/auditoria", auditoriaHandler.List)
}
