package routers

import (
	"github.com/Jody-Heid/beautyqueue-frontend/routers/api/models"
	"github.com/Jody-Heid/beautyqueue-frontend/routers/frontend"

	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// MainRouter is the router registering every route of the dashboard
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers all of the app's routes
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/heartbeat", r.Heartbeat)

	r.frontendRouter.RegisterRoutes(routerGroup)
}
