package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storehub/internal/http-api/middleware"
	"storehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	storeService service.StoreService
}

func NewOwnerHandler(storeService service.StoreService) *OwnerHandler {
	return &OwnerHandler{storeService: storeService}
}

// RegisterRoutes registers the store-owner endpoints; both sit behind the
// store_owner role gate, and raters additionally behind the ownership check.
func (h *OwnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stores", h.ListStores)
	router.GET("/stores/:store_id/raters", h.ListRaters)
}

// ListStores handles GET /owner/stores
func (h *OwnerHandler) ListStores(c *gin.Context) {
	stores, err := h.storeService.ListOwnedStores(middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load owner stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// ListRaters handles GET /owner/stores/:store_id/raters
func (h *OwnerHandler) ListRaters(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("store_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	raters, err := h.storeService.RatersFor(middleware.CallerID(c), storeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStoreID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotStoreOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load raters"})
		}
		return
	}

	c.JSON(http.StatusOK, raters)
}
