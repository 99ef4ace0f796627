package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salao-m2a/salon-scheduler/internal/auth"
	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
	"github.com/salao-m2a/salon-scheduler/internal/httperr"
	"github.com/salao-m2a/salon-scheduler/internal/middleware"
	"github.com/salao-m2a/salon-scheduler/internal/models"
	"github.com/salao-m2a/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db      *gorm.DB
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager, revoked *auth.RevocationList) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, revoked: revoked}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailFormatValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(rbac.ParseRole(req.Role)),
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ? AND active = ?", email, true).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// Logout coloca o jti do token atual na lista de revogados até ele
// expirar. Sem redis configurado a revogação é best-effort do cliente.
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, _ := c.Get(middleware.ContextTokenJTI)
	jti, _ := jtiVal.(string)

	tokenString, ok := bearerTokenFromHeader(c)
	if ok && jti != "" {
		if claims, err := h.tokens.Parse(tokenString); err == nil {
			if err := h.revoked.Revoke(c.Request.Context(), jti, claims.ExpiresAt); err != nil {
				httperr.Internal(c, "failed_to_revoke_token", "Erro ao encerrar sessão.")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged_out"})
}

func bearerTokenFromHeader(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
