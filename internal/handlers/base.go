package handlers

import (
	"errors"
	"log"
	"net/http"

	"keyblogger/internal/auth"
	"keyblogger/internal/query"
	"keyblogger/internal/store"

	"github.com/gin-gonic/gin"
)

// JSONError maps the store/auth error taxonomy to a response status.
// Anything unclassified is a storage-layer failure and stays generic.
func JSONError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateTitle), errors.Is(err, store.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBadCredentials), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, query.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// filterFromQuery reads the search/filter params; search wins when both
// are present.
func filterFromQuery(c *gin.Context) query.Filter {
	return query.FromParams(c.Query("search"), c.Query("filter"))
}
