package handler

import (
	"net/http"

	"fintrack/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// fail renders a domain error as the {success:false, message} envelope.
// Non-domain errors are logged and surfaced as an opaque 500 so no
// internal diagnostic detail leaks to clients.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("request failed")
		message = "internal server error, please try again later"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

// invalid maps a request-binding failure to a 400 in the same envelope.
func invalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request: " + err.Error()})
}
