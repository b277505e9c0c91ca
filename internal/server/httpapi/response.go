package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workhive/jobboard/internal/common"
)

// respondError maps a service error to a status-coded JSON response. The
// mapping lives in one place so handlers stay free of status logic.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "email already exists"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid credentials"})
	case errors.Is(err, common.ErrorInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id format"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid token"})
	default:
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
	}
}
