package handler

import (
	"net/http"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/middleware"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	svc service.CollectionService
}

func NewCollectionHandler(svc service.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// RegisterRoutes mounts the collection endpoints. Reading a single
// collection only needs optional auth so public collections can be shared.
func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.POST("", requireAuth, h.Create)
	rg.GET("", requireAuth, h.ListMine)
	rg.GET("/:id", optionalAuth, h.Get)
	rg.PUT("/:id", requireAuth, h.Update)
	rg.DELETE("/:id", requireAuth, h.Delete)
	rg.POST("/:id/items", requireAuth, h.AddItem)
	rg.DELETE("/:id/items/:tmdbId", requireAuth, h.RemoveItem)
}

func (h *CollectionHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	collection, err := h.svc.Create(ctx, userID, service.CollectionInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (h *CollectionHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	summaries, err := h.svc.ListMine(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrCollectionNotFound)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// empty for anonymous callers
	collection, err := h.svc.Get(ctx, middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCollectionDetail(collection))
}

func (h *CollectionHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrCollectionNotFound)
		return
	}

	var req dto.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	collection, err := h.svc.Update(ctx, userID, id, service.CollectionPatch{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrCollectionNotFound)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

func (h *CollectionHandler) AddItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrCollectionNotFound)
		return
	}

	var req dto.AddCollectionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.svc.AddItem(ctx, userID, id, service.CollectionItemInput{
		TMDBID:      req.TMDBID.Int64(),
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CollectionHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrCollectionNotFound)
		return
	}
	tmdbID, ok := parseID(c, "tmdbId")
	if !ok {
		respondError(c, service.ErrItemNotInCollection)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.RemoveItem(ctx, userID, id, tmdbID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
