package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router registers a set of routes on a router group
type Router interface {
	RegisterRoutes(*gin.RouterGroup)
	Heartbeat(*gin.Context)
}

// BaseRouter provides the routes shared by every router
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
