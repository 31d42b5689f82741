package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/internal/auth"
	"github.com/Gicotto/MyTaskApp/internal/handlers"
	"github.com/Gicotto/MyTaskApp/internal/middleware"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, svc *auth.Service) {
	// --- Публичные маршруты ---
	// Главная страница, вход и регистрация доступны без аутентификации.
	r.GET("/", h.IndexHandler)
	r.GET("/login", h.ShowLoginPage)
	r.POST("/login", h.LoginHandler)
	r.GET("/register", h.ShowRegisterPage)
	r.POST("/register", h.RegisterHandler)

	// Выход доступен только аутентифицированным пользователям.
	r.GET("/logout", middleware.RequireAuth(svc), h.LogoutHandler)

	// Список и создание задач требуют права management.
	tasks := r.Group("/my-tasks")
	tasks.Use(middleware.RequireAuth(svc), middleware.RequirePermission("management"))
	{
		tasks.GET("", h.ListTasksHandler)
		tasks.POST("", h.CreateTaskHandler)
	}

	// Список и создание операций требуют права accounting.
	finance := r.Group("/finance")
	finance.Use(middleware.RequireAuth(svc), middleware.RequirePermission("accounting"))
	{
		finance.GET("", h.ListTransactionsHandler)
		finance.POST("", h.CreateTransactionHandler)
	}

	// Правка и удаление исторически доступны без проверки прав, хотя
	// соседние списки защищены. Поведение сохранено как есть.
	r.GET("/delete-my-task/:id", h.DeleteTaskHandler)
	r.GET("/edit-my-task/:id", h.ShowEditTaskPage)
	r.POST("/edit-my-task/:id", h.UpdateTaskHandler)
	r.GET("/delete-finance/:id", h.DeleteTransactionHandler)
	r.GET("/edit-finance/:id", h.ShowEditTransactionPage)
	r.POST("/edit-finance/:id", h.UpdateTransactionHandler)
}
