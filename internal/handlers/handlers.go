package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/internal/auth"
	"github.com/Gicotto/MyTaskApp/internal/repository"
)

// dateLayout is the calendar date format every form in the app uses.
const dateLayout = "2006-01-02"

// Handler bundles everything the routes need: the repositories, the
// auth service and a logger. It is constructed once at startup and
// passed into route registration; there is no package-level state.
type Handler struct {
	Tasks   repository.TaskRepository
	Finance repository.FinancialRepository
	Users   repository.UserRepository
	Roles   repository.RoleRepository
	Auth    *auth.Service
	Log     *slog.Logger
}

func New(tasks repository.TaskRepository, finance repository.FinancialRepository,
	users repository.UserRepository, roles repository.RoleRepository,
	authSvc *auth.Service, log *slog.Logger) *Handler {
	return &Handler{
		Tasks:   tasks,
		Finance: finance,
		Users:   users,
		Roles:   roles,
		Auth:    authSvc,
		Log:     log,
	}
}

// IndexHandler renders the public landing page.
func (h *Handler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// storeError surfaces a persistence failure to the caller as plain
// text, the same way the app has always done.
func (h *Handler) storeError(c *gin.Context, err error) {
	h.Log.Error("Store operation failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "ERROR: %v", err)
}

// parseID reads the :id route parameter. A non-numeric id is treated
// the same as a missing record.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "record not found")
		return 0, false
	}
	return uint(id), true
}
