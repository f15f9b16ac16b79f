package controllers

import (
	"errors"

	"github.com/parodie/restaurantBack/pkg/resp"
	"github.com/parodie/restaurantBack/services"

	"github.com/gin-gonic/gin"
)

// writeServiceErr maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a 500.
func writeServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrAlreadyTerminal),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrNotModifiable),
		errors.Is(err, services.ErrAlreadyLinked),
		errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrBadQuantity),
		errors.Is(err, services.ErrDishUnavailable),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrInvalidRole):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
