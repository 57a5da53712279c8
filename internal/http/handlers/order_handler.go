// Order HTTP handlers.
//
// This file exposes the order submission endpoint:
//   - POST /api/add_order
//
// The body is an order transfer object; the Telegram identifier is required
// and the owning user is created on the fly when this is their first contact.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superfood/go-food-backend/internal/transfer"
)

// AddOrder handles POST /api/add_order. It binds the order payload, lets the
// service normalize/validate and persist it, and answers the status envelope.
//
// Responses:
//   - 200 {"status":"ok"} on success
//   - 400 on malformed JSON
//   - 422 on a field constraint violation (message names the field)
//   - 500 on storage failure
func (h *Handlers) AddOrder(c *gin.Context) {
	var p transfer.OrderPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if _, err := h.orderSvc.Place(c.Request.Context(), p); err != nil {
		var ve *transfer.ValidationError
		if errors.As(err, &ve) {
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidationFailed, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StatusOK)
}
