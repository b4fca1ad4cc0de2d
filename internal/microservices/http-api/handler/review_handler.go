package handler

import (
	"net/http"

	"cineverse/internal/microservices/http-api/dto"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// RegisterRoutes mounts the review endpoints. On GET the :id segment is a
// movie id, on DELETE it is a review id.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/:id", h.ListForMovie)
	rg.POST("", requireAuth, h.Create)
	rg.DELETE("/:id", requireAuth, h.Delete)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidBody)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	review, err := h.svc.Add(ctx, userID, service.ReviewInput{
		TMDBID:  req.TMDBID.Int64(),
		Content: req.Content,
		Rating:  req.Rating.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(review))
}

func (h *ReviewHandler) ListForMovie(c *gin.Context) {
	movieID, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrInvalidMovieID)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.svc.ListForMovie(ctx, movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToReviewResponses(reviews))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "id")
	if !ok {
		respondError(c, service.ErrReviewNotFound)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, userID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
