package frontend

import (
	"net/http"
	"strings"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/environment"
	"github.com/Jody-Heid/beautyqueue-frontend/forms"
	"github.com/Jody-Heid/beautyqueue-frontend/navigation"
	"github.com/Jody-Heid/beautyqueue-frontend/routers/api/models"
	"github.com/Jody-Heid/beautyqueue-frontend/services"
	"github.com/Jody-Heid/beautyqueue-frontend/toast"
	"github.com/Jody-Heid/beautyqueue-frontend/utils/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	loginPath          = "/auth/login"
	logoutPath         = "/auth/logout"
	forgotPasswordPath = "/auth/staff/forgot-password"
	resetPasswordPath  = "/auth/staff/reset-password"
	dashboardPath      = navigation.BasePath
)

const sessionKey = "session"

type Router interface {
	models.Router
	LoginPage(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	ForgotPasswordPage(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPasswordPage(*gin.Context)
	ResetPassword(*gin.Context)
	DashboardPage(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger      *zap.Logger
	cfg         *config.AppConfig
	env         *environment.Env
	authService services.AuthService
	validator   *forms.Validator
	toasts      *toast.Catalog
	sidebar     navigation.Sidebar
}

func NewRouter(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, authService services.AuthService,
	validator *forms.Validator, toasts *toast.Catalog, sidebar navigation.Sidebar) Router {
	return &frontendRouter{
		logger:      logger,
		cfg:         cfg,
		env:         env,
		authService: authService,
		validator:   validator,
		toasts:      toasts,
		sidebar:     sidebar,
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusSeeOther, dashboardPath)
	})

	routerGroup.GET(relative(loginPath), r.LoginPage)
	routerGroup.POST(relative(loginPath), r.Login)
	routerGroup.GET(relative(logoutPath), r.Logout)
	routerGroup.GET(relative(forgotPasswordPath), r.ForgotPasswordPage)
	routerGroup.POST(relative(forgotPasswordPath), r.ForgotPassword)
	routerGroup.GET(relative(resetPasswordPath), r.ResetPasswordPage)
	routerGroup.POST(relative(resetPasswordPath), r.ResetPassword)

	dashboard := routerGroup.Group("", r.requireSession)
	for _, route := range r.sidebar.Routes() {
		dashboard.GET(relative(route), r.DashboardPage)
	}
}

// requireSession sends visitors without a valid session cookie to the login page
func (r *frontendRouter) requireSession(ctx *gin.Context) {
	token, err := ctx.Cookie(auth.CookieName)
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, loginPath)
		ctx.Abort()
		return
	}

	claims := auth.GetJWTClaims(token, r.jwtSecret())
	if claims == nil {
		r.logger.Debug("invalid session cookie")
		ctx.Redirect(http.StatusSeeOther, loginPath)
		ctx.Abort()
		return
	}

	ctx.Set(sessionKey, auth.SessionFromClaims(*claims))
	ctx.Next()
}

func (r *frontendRouter) jwtSecret() []byte {
	return []byte(r.env.Get(environment.JWTSecret))
}

// secureCookies restricts the session cookie to HTTPS outside of local development
func (r *frontendRouter) secureCookies() bool {
	return r.env.Get(environment.Environment) == "prod"
}

func relative(path string) string {
	return strings.TrimPrefix(path, "/")
}
