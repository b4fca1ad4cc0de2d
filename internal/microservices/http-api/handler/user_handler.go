package handler

import (
	"net/http"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRoutes expects rg to be behind AuthMiddleware.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
	rg.GET("/watchlist", h.GetWatchlist)
	rg.POST("/watchlist", h.AddToWatchlist)
	rg.DELETE("/watchlist/:id", h.RemoveFromWatchlist)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.GetProfile(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModelWithCreated(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.UpdateProfile(ctx, userID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModelWithCreated(user))
}

func (h *UserHandler) GetWatchlist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := h.svc.GetWatchlist(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *UserHandler) AddToWatchlist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddToWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	entry, err := h.svc.AddToWatchlist(ctx, userID, service.WatchlistInput{
		TMDBID: req.TMDBID.Int64(),
		Title:  req.Title,
		Poster: req.Poster,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *UserHandler) RemoveFromWatchlist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entryID, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrWatchlistEntryNotFound)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.RemoveFromWatchlist(ctx, userID, entryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
