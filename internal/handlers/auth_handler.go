package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gicotto/MyTaskApp/internal/auth"
)

// ShowLoginPage renders the login form.
func (h *Handler) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// LoginHandler checks the submitted credentials. Success sets the
// session cookie and redirects home; failure re-renders the login form.
func (h *Handler) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.Auth.Login(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"error": "Invalid username or password",
			})
			return
		}
		h.storeError(c, err)
		return
	}

	c.SetCookie("auth_token", token, int(h.Auth.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// LogoutHandler revokes the session, clears the cookie and redirects
// home. Safe to call repeatedly.
func (h *Handler) LogoutHandler(c *gin.Context) {
	if token, err := c.Cookie("auth_token"); err == nil {
		h.Auth.Logout(c.Request.Context(), token)
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// ShowRegisterPage renders the registration form with the available
// roles.
func (h *Handler) ShowRegisterPage(c *gin.Context) {
	roles, err := h.Roles.List()
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{
		"roles": roles,
	})
}

// RegisterHandler creates a new user from the form and redirects to the
// login page.
func (h *Handler) RegisterHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.String(http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.Auth.Register(username, password, c.PostFormArray("roles"))
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			c.String(http.StatusConflict, "username already exists")
			return
		}
		h.storeError(c, err)
		return
	}

	h.Log.Info("User registered", "user_id", user.ID, "username", user.Username)
	c.Redirect(http.StatusFound, "/login")
}
