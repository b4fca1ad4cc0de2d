package handler

import (
	"net/http"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/middleware"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler builds the auth endpoints. secureCookies marks the session
// cookie Secure and should be set in production.
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the auth endpoints. The limit middleware only
// guards the routes that check credentials.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, limit ...gin.HandlerFunc) {
	credentials := rg.Group("", limit...)
	credentials.POST("/signup", h.Signup)
	credentials.POST("/login", h.Login)

	rg.POST("/logout", h.Logout)
	rg.GET("/verify", h.Verify)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.authService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		// existing clients expect 400 here; the code still says CONFLICT
		if err == service.ErrUserExists {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": service.KindConflict})
			return
		}
		respondError(c, err)
		return
	}

	public := dto.FromUserModel(user)
	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "Signup successful!",
		ID:      public.ID,
		Name:    public.Name,
		Email:   public.Email,
		User:    public,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ttl := h.authService.TokenTTL()
	h.setTokenCookie(c, token, int(ttl.Seconds()))

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
		User:      dto.FromUserModel(user),
	})
}

// Logout is stateless: tokens are not revoked server side, the cookie is cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	tokenString := middleware.ExtractToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false})
		return
	}

	claims, err := h.authService.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid: true,
		User: &dto.ClaimsPayload{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		},
	})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, value, maxAge, "/", "", h.secureCookies, false)
}
