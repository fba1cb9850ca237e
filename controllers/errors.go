package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

var errServer = errors.New("server error")

// respondServiceError maps the service error taxonomy onto HTTP
// responses. Storage and runtime failures are logged and surfaced as a
// generic server error.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrEmailExists):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrRoomNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
	}
}
