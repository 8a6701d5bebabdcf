// Package handlers contains the HTTP adapters for every API resource.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
	"github.com/ceomapp/ceom/internal/server/middleware"
)

const dateLayout = "2006-01-02"

// BusinessGetter resolves a business for tenancy checks.
type BusinessGetter interface {
	GetBusiness(ctx context.Context, id string) (models.Business, error)
}

type identity struct {
	UserID string
	Role   string
}

func callerIdentity(c *gin.Context) identity {
	return identity{
		UserID: c.GetString(middleware.CtxUserID),
		Role:   c.GetString(middleware.CtxRole),
	}
}

// requireBusiness loads the business from the :id route param and enforces
// that the caller owns it (admins bypass the ownership check). On failure it
// writes the response and returns ok=false.
func requireBusiness(c *gin.Context, store BusinessGetter) (models.Business, bool) {
	who := callerIdentity(c)

	business, err := store.GetBusiness(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		return models.Business{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load business"})
		return models.Business{}, false
	}

	if who.Role != models.RoleAdmin && business.OwnerID != who.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "business does not belong to you"})
		return models.Business{}, false
	}

	return business, true
}

// parseDateParam parses an optional YYYY-MM-DD query value. A second return
// of false means the value was present but malformed.
func parseDateParam(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
