// Admin auth: login → JWT pair, refresh rotation, current profile.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/transrodar/backend/internal/admins"
	"github.com/transrodar/backend/internal/middleware"
	"github.com/transrodar/backend/internal/response"
	"github.com/transrodar/backend/internal/security"
	"github.com/transrodar/backend/internal/store"
	"github.com/transrodar/backend/internal/util"
)

// RefreshTokenStore is the single-use jti store behind login and refresh.
// *store.RefreshStore is the production implementation.
type RefreshTokenStore interface {
	Put(ctx context.Context, adminID, jti string) error
	Consume(ctx context.Context, adminID, jti string) error
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/login: email+password against the bcrypt hash,
// answers with an access/refresh pair. Wrong email and wrong password are
// indistinguishable on the wire.
func Login(repo *admins.Repo, jwt *security.JWTManager, refresh RefreshTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			response.Error(c, http.StatusBadRequest, "email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		admin, err := repo.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, admins.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "invalid credentials")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		if !util.ComparePassword(admin.PasswordHash, req.Password) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}

		id, err := uuid.Parse(admin.ID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		tokens, refreshClaims, err := jwt.Issue(admin.Role, id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		if err := refresh.Put(ctx, admin.ID, refreshClaims.JTI); err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, tokens)
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /admin/refresh: verifies the refresh token, consumes
// its jti (single use) and issues a fresh pair. A reused token gets 401.
func Refresh(jwt *security.JWTManager, refresh RefreshTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			response.Error(c, http.StatusBadRequest, "refresh_token is required")
			return
		}

		claims, err := jwt.ParseRefresh(req.RefreshToken)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired refresh token")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := refresh.Consume(ctx, claims.UserID, claims.JTI); err != nil {
			if errors.Is(err, store.ErrRefreshInvalid) {
				response.Error(c, http.StatusUnauthorized, "refresh token already used or revoked")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		tokens, refreshClaims, err := jwt.Issue(claims.Role, id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		if err := refresh.Put(ctx, claims.UserID, refreshClaims.JTI); err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, tokens)
	}
}

// Me handles GET /admin/me: the authenticated admin's own profile.
func Me(repo *admins.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := middleware.UserIDFrom(c.Request.Context())
		id, err := uuid.Parse(idStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		admin, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, admins.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "admin not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, admin)
	}
}
