// controllers/errors.go
package controllers

import (
	"errors"

	"github.com/Ashish12122003/Menumate-backend/pkg/resp"
	"github.com/Ashish12122003/Menumate-backend/services"

	"github.com/gin-gonic/gin"
)

// serviceError maps the common service failures every shop-scoped handler
// shares; anything it does not recognize becomes a generic 500.
func serviceError(c *gin.Context, err error, notFoundMsg string) {
	var perm *services.PermissionError
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, notFoundMsg)
	case errors.As(err, &perm):
		resp.Forbidden(c, perm.Reason)
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		resp.ServerError(c, err)
	}
}
