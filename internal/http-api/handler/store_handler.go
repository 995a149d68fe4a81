package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storehub/internal/http-api/dto"
	"storehub/internal/http-api/middleware"
	"storehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeService  service.StoreService
	ratingService service.RatingService
}

func NewStoreHandler(storeService service.StoreService, ratingService service.RatingService) *StoreHandler {
	return &StoreHandler{
		storeService:  storeService,
		ratingService: ratingService,
	}
}

// RegisterRoutes registers the public browse and the rating upsert. POST and
// PUT on the rating resource share one handler: the upsert makes them
// identical, and idempotent either way.
func (h *StoreHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth, authRequired gin.HandlerFunc) {
	router.GET("/stores", optionalAuth, h.List)
	router.POST("/stores/:store_id/ratings", authRequired, h.UpsertRating)
	router.PUT("/stores/:store_id/ratings", authRequired, h.UpsertRating)
}

// List handles GET /stores?q=
// Anonymous callers get aggregates only; a valid bearer token adds the
// caller's own rating per store.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.ListStores(middleware.CallerID(c), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// UpsertRating handles POST/PUT /stores/:store_id/ratings
func (h *StoreHandler) UpsertRating(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("store_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be 1-5"})
		return
	}

	agg, err := h.ratingService.UpsertRating(middleware.CallerID(c), storeID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStoreID), errors.Is(err, service.ErrInvalidRatingValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit rating"})
		}
		return
	}

	c.JSON(http.StatusOK, agg)
}
