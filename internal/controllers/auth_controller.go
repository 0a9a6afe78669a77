package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campuscast/internal/digest"
	"campuscast/internal/logger"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
	"campuscast/internal/session"
	"campuscast/internal/store"
)

// roleRoutes maps a role to the page the client should land on after
// a successful login.
var roleRoutes = map[string]string{
	models.RoleSupervisor: "/SAL/supervisor.html",
	models.RoleCandidate:  "/IAH/candidates.html",
	models.RoleVoter:      "/dashboard-test.html",
	models.RolePublic:     "/publicDash.html",
}

// registrationDone is where every fresh registration lands.
const registrationDone = "/done.html"

type AuthController struct {
	Deps
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	Dept     string `json:"dept"`
	Role     string `json:"role" binding:"required"`
}

// Signup registers a new account. Supervisors are provisioned out of
// band; the form only offers candidate, voter and public.
func (a *AuthController) Signup(c *gin.Context) {
	t := a.t(c)

	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("login.missingFields")})
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("reg.shortPassword")})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: digest.Digest(input.Password),
		DOB:          input.DOB,
		Dept:         input.Dept,
		Role:         role,
	}

	if err := a.Store.Users.Insert(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": t("reg.duplicateEmail")})
			return
		}
		storeError(c, t, "creating user", err)
		return
	}

	token, err := a.openSession(c, user)
	if err != nil {
		storeError(c, t, "saving session", err)
		return
	}

	logger.L().WithField("user_id", user.ID).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"user":     sessionRecord(user),
		"redirect": registrationDone,
	})
}

// Login checks email, role and password digest together; any mismatch
// gets the same answer so the three are indistinguishable.
func (a *AuthController) Login(c *gin.Context) {
	t := a.t(c)

	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("login.missingFields")})
		return
	}

	user, err := a.Store.Users.GetByEmail(strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": t("login.invalidCredentials")})
			return
		}
		storeError(c, t, "looking up user", err)
		return
	}

	if user.Role != body.Role || !digest.Matches(body.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": t("login.invalidCredentials")})
		return
	}

	token, err := a.openSession(c, *user)
	if err != nil {
		storeError(c, t, "saving session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user":     sessionRecord(*user),
		"redirect": roleRoutes[user.Role],
	})
}

// Logout clears the session behind the caller's token, if any, and
// always points back at the landing page.
func (a *AuthController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if key, ok := middleware.SessionKeyFromToken(strings.TrimPrefix(authHeader, "Bearer ")); ok {
			if err := a.Sessions.Clear(c.Request.Context(), key); err != nil {
				logger.L().WithError(err).Warn("clearing session")
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/index.html"})
}

// openSession persists the session record under a fresh key and
// returns the bearer token wrapping that key.
func (a *AuthController) openSession(c *gin.Context, user models.User) (string, error) {
	key := uuid.NewString()
	if err := a.Sessions.Save(c.Request.Context(), key, sessionRecord(user)); err != nil {
		return "", err
	}
	return middleware.GenerateToken(key)
}

func sessionRecord(user models.User) session.Record {
	return session.Record{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
}

func validateAndNormalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	switch role {
	case models.RoleCandidate, models.RoleVoter, models.RolePublic:
		return role, nil
	default:
		return "", errors.New("invalid role")
	}
}
