// Menu HTTP handlers.
//
// This file exposes the read-only menu endpoint:
//   - GET /api/items (full menu as transfer objects)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListItems handles GET /api/items. It returns the complete menu as an array
// of item transfer objects; an unseeded menu yields an empty array.
func (h *Handlers) ListItems(c *gin.Context) {
	items, err := h.menuSvc.Items(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}
