package ginserver

import (
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	packagesapp "adventurestay/internal/app/handlers/packages"
	domainpackages "adventurestay/internal/domain/packages"
)

type PackageHandler struct {
	CatalogQuery *packagesapp.CatalogHandler
	GetQuery     *packagesapp.GetHandler
	ImagesQuery  *packagesapp.ImagesHandler
	Logger       *slog.Logger
}

func (h PackageHandler) Catalog(c *gin.Context) {
	if h.CatalogQuery == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	catalog, err := h.CatalogQuery.Handle(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("catalog query failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h PackageHandler) Get(c *gin.Context) {
	if h.GetQuery == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	card, err := h.GetQuery.Handle(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domainpackages.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if h.Logger != nil {
			h.Logger.Error("package query failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h PackageHandler) Images(c *gin.Context) {
	if h.ImagesQuery == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	urls, err := h.ImagesQuery.Handle(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domainpackages.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if h.Logger != nil {
			h.Logger.Error("package images query failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, urls)
}

var _ PackageHTTP = PackageHandler{}
