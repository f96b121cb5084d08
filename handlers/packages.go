package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripway/middleware"
	"tripway/models"
	"tripway/services/insurance"
	"tripway/services/travelpkg"
	"tripway/utils"
)

// PackagesHandler serves the public catalog and the agent-side package
// management endpoints.
type PackagesHandler struct {
	Packages  travelpkg.PackageService
	Insurance insurance.InsuranceService
}

// List renders the catalog, optionally filtered by the q search term.
// A backend failure still renders the view, with an empty list and an
// error notice, so the page never blanks out.
func (h *PackagesHandler) List(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "ListPackages"))
	ctx := c.Request.Context()

	query := c.Query("q")
	var (
		packages []models.TravelPackage
		err      error
	)
	if query != "" {
		packages, err = h.Packages.SearchPackages(ctx, query)
	} else {
		packages, err = h.Packages.GetAllPackages(ctx)
	}
	if err != nil {
		logger.Warn("failed to load packages", zap.Error(err))
		c.JSON(http.StatusOK, page(c, gin.H{
			"packages": []models.TravelPackage{},
			"query":    query,
			"error":    err.Error(),
		}))
		return
	}

	c.JSON(http.StatusOK, page(c, gin.H{
		"packages": packages,
		"query":    query,
	}))
}

// Detail renders one package together with the insurance options the
// booking flow will offer.
func (h *PackagesHandler) Detail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package id"})
		return
	}

	ctx := c.Request.Context()
	pkg, err := h.Packages.GetPackageByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page(c, gin.H{
		"package":          pkg,
		"insuranceOptions": h.Insurance.GetOfferCatalog(ctx),
	}))
}

// Create adds a package for the signed-in agent.
func (h *PackagesHandler) Create(c *gin.Context) {
	logger := getLogger(c).With(zap.String("handler", "CreatePackage"))
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input models.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.Packages.CreatePackage(c.Request.Context(), sess.AuthToken, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}

	logger.Info("package created", zap.Int64("packageId", pkg.PackageID))
	c.JSON(http.StatusCreated, gin.H{"package": pkg, "message": "Package created successfully"})
}

// Update edits one of the agent's packages.
func (h *PackagesHandler) Update(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package id"})
		return
	}

	var input models.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.Packages.UpdatePackage(c.Request.Context(), sess.AuthToken, id, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg, "message": "Package updated successfully"})
}

// Delete removes one of the agent's packages.
func (h *PackagesHandler) Delete(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package id"})
		return
	}

	if err := h.Packages.DeletePackage(c.Request.Context(), sess.AuthToken, id); err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
