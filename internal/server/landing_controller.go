package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mxcd/fittracker-download/internal/web"
)

// landingPageHandler returns the fixed HTML page for every path other than /download.
func (s *Server) landingPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", web.LandingPage())
	}
}

// getOnly answers every method except GET with 501 Not Implemented.
func getOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		c.String(http.StatusNotImplemented, "Unsupported method ('%s')", c.Request.Method)
		c.Abort()
	}
}
