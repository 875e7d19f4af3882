package handler

import (
	"net/http"

	"ramahomes/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type listMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondList(c *gin.Context, data any, page, limit int, total int64) {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"meta": listMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// respondError renders any *apperror.Error with its status and message;
// everything else is logged in full and returned as a generic 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		if appErr.Status >= http.StatusInternalServerError {
			logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		c.JSON(appErr.Status, gin.H{
			"success": false,
			"message": appErr.Message,
		})
		return
	}
	logrus.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Unexpected server error.",
	})
}
