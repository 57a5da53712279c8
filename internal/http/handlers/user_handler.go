// User HTTP handlers.
//
// This file exposes the profile endpoints:
//   - PATCH  /api/update_user_info
//   - DELETE /api/delete_user/{tg_id}
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/superfood/go-food-backend/internal/services"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// UpdateUserInfo handles PATCH /api/update_user_info. The body is a partial
// update keyed by tg_id; omitted fields are left untouched. An update that
// matches no user is still reported as success; the miss is only logged.
//
// Responses:
//   - 200 {"status":"ok"}
//   - 400 on malformed JSON
//   - 422 on a field constraint violation (message names the field)
//   - 500 on storage failure
func (h *Handlers) UpdateUserInfo(c *gin.Context) {
	var upd transfer.UserUpdatePayload
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.userSvc.UpdateInfo(c.Request.Context(), upd); err != nil {
		var ve *transfer.ValidationError
		if errors.As(err, &ve) {
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidationFailed, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StatusOK)
}

// DeleteUser handles DELETE /api/delete_user/:tg_id. Deleting a user removes
// their orders through the storage-level cascade. An unknown identifier is a
// distinct outcome with its own envelope.
//
// Responses:
//   - 200 {"status":"ok"}
//   - 400 when tg_id is not an integer
//   - 404 {"status":"not ok. The user was not found"}
//   - 500 on storage failure
func (h *Handlers) DeleteUser(c *gin.Context) {
	tgID, err := strconv.ParseInt(c.Param("tg_id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "tg_id must be an integer")
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), tgID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ok(c, http.StatusNotFound, StatusUserNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StatusOK)
}
