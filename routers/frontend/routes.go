package frontend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Jody-Heid/beautyqueue-frontend/entities"
	"github.com/Jody-Heid/beautyqueue-frontend/forms"
	"github.com/Jody-Heid/beautyqueue-frontend/services"
	"github.com/Jody-Heid/beautyqueue-frontend/utils/auth"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	loginTemplate          = "login.gohtml"
	forgotPasswordTemplate = "forgotPassword.gohtml"
	resetPasswordTemplate  = "resetPassword.gohtml"
	dashboardTemplate      = "dashboard.gohtml"
)

func (r *frontendRouter) render(ctx *gin.Context, status int, templateName string, data pageDataModel) {
	data.Cfg = r.cfg
	if data.Values == nil {
		data.Values = map[string]string{}
	}
	ctx.HTML(status, templateName, data)
}

// newController creates a form controller logging every state change of the named form
func (r *frontendRouter) newController(form string) *forms.Controller {
	controller := forms.NewController(r.validator)
	controller.OnTransition(func(from, to forms.State) {
		r.logger.Debug("form state changed", zap.String("form", form), zap.Stringer("from", from), zap.Stringer("to", to))
	})
	return controller
}

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	if token, err := ctx.Cookie(auth.CookieName); err == nil && auth.GetJWTClaims(token, r.jwtSecret()) != nil {
		ctx.Redirect(http.StatusSeeOther, dashboardPath)
		return
	}

	r.render(ctx, http.StatusOK, loginTemplate, pageDataModel{
		Title:  "Login",
		Action: loginPath,
	})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	page := pageDataModel{
		Title:  "Login",
		Action: loginPath,
	}

	var form forms.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		r.logger.Warn("could not bind login form", zap.Error(err))
		page.notify(r.toasts.LoginFailed())
		r.render(ctx, http.StatusBadRequest, loginTemplate, page)
		return
	}
	page.Values = form.Values()

	var session *entities.Session
	outcome := r.newController("login").Submit(ctx.Request.Context(), form, func(c context.Context) error {
		var err error
		session, err = r.authService.Login(c, form.Email, form.Password, form.RememberMe)
		return err
	})

	if outcome.Invalid() {
		r.logger.Debug("login form invalid", zap.Any("errors", outcome.FieldErrors))
		page.Errors = outcome.FieldErrors
		r.render(ctx, http.StatusBadRequest, loginTemplate, page)
		return
	}

	if outcome.Err != nil {
		r.logger.Error("could not log in", zap.String("email", form.Email), zap.Error(outcome.Err))
		page.notify(r.toasts.LoginFailed())
		r.render(ctx, http.StatusInternalServerError, loginTemplate, page)
		return
	}

	token, err := auth.NewJWT(*session, r.jwtSecret())
	if err != nil {
		r.logger.Error("could not create session JWT", zap.String("email", form.Email), zap.Error(err))
		page.notify(r.toasts.LoginFailed())
		r.render(ctx, http.StatusInternalServerError, loginTemplate, page)
		return
	}

	// without remember me the cookie only lives as long as the browser session
	maxAge := 0
	if session.RememberMe {
		maxAge = int(session.Lifetime().Seconds())
	}
	ctx.SetCookie(auth.CookieName, token, maxAge, "/", "", r.secureCookies(), true)

	page.notify(r.toasts.LoginSucceeded(session.Email))
	page.Redirect = &redirect{Path: dashboardPath, After: r.cfg.Auth.LoginRedirectDelay}
	r.render(ctx, http.StatusOK, loginTemplate, page)
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.CookieName, "", -1, "/", "", r.secureCookies(), true)
	ctx.Redirect(http.StatusSeeOther, loginPath)
}

func (r *frontendRouter) ForgotPasswordPage(ctx *gin.Context) {
	r.render(ctx, http.StatusOK, forgotPasswordTemplate, pageDataModel{
		Title:  "Forgot Password",
		Action: forgotPasswordPath,
	})
}

func (r *frontendRouter) ForgotPassword(ctx *gin.Context) {
	page := pageDataModel{
		Title:  "Forgot Password",
		Action: forgotPasswordPath,
	}

	var form forms.ForgotPasswordForm
	if err := ctx.ShouldBind(&form); err != nil {
		r.logger.Warn("could not bind forgot password form", zap.Error(err))
		page.notify(r.toasts.ResetLinkFailed())
		r.render(ctx, http.StatusBadRequest, forgotPasswordTemplate, page)
		return
	}
	page.Values = form.Values()

	outcome := r.newController("forgot password").Submit(ctx.Request.Context(), form, func(c context.Context) error {
		return r.authService.RequestPasswordReset(c, form.Email)
	})

	if outcome.Invalid() {
		page.Errors = outcome.FieldErrors
		r.render(ctx, http.StatusBadRequest, forgotPasswordTemplate, page)
		return
	}

	if outcome.Err != nil {
		r.logger.Error("could not request password reset", zap.Error(outcome.Err))
		page.notify(r.toasts.ResetLinkFailed())
		r.render(ctx, http.StatusInternalServerError, forgotPasswordTemplate, page)
		return
	}

	// the same notification is shown whether or not the account exists
	page.notify(r.toasts.ResetLinkSent())
	page.Redirect = &redirect{Path: loginPath, After: r.cfg.Auth.ForgotPasswordRedirectDelay}
	r.render(ctx, http.StatusOK, forgotPasswordTemplate, page)
}

func (r *frontendRouter) ResetPasswordPage(ctx *gin.Context) {
	r.render(ctx, http.StatusOK, resetPasswordTemplate, pageDataModel{
		Title:  "Reset Password",
		Action: resetPasswordAction(ctx.Query("token")),
	})
}

func (r *frontendRouter) ResetPassword(ctx *gin.Context) {
	token := ctx.Query("token")
	page := pageDataModel{
		Title:  "Reset Password",
		Action: resetPasswordAction(token),
	}

	var form forms.ResetPasswordForm
	if err := ctx.ShouldBind(&form); err != nil {
		r.logger.Warn("could not bind reset password form", zap.Error(err))
		page.notify(r.toasts.PasswordResetFailed())
		r.render(ctx, http.StatusBadRequest, resetPasswordTemplate, page)
		return
	}

	controller := r.newController("reset password")
	controller.BeforeSubmit(func() error {
		if token == "" {
			return services.ErrMissingResetToken
		}
		return nil
	})
	outcome := controller.Submit(ctx.Request.Context(), form, func(c context.Context) error {
		return r.authService.ResetPassword(c, token, form.Password)
	})

	if outcome.Invalid() {
		page.Errors = outcome.FieldErrors
		r.render(ctx, http.StatusBadRequest, resetPasswordTemplate, page)
		return
	}

	if errors.Is(outcome.Err, services.ErrMissingResetToken) {
		r.logger.Warn("password reset attempted without token")
		page.notify(r.toasts.InvalidResetLink())
		r.render(ctx, http.StatusBadRequest, resetPasswordTemplate, page)
		return
	}

	if outcome.Err != nil {
		r.logger.Error("could not reset password", zap.Error(outcome.Err))
		page.notify(r.toasts.PasswordResetFailed())
		r.render(ctx, http.StatusInternalServerError, resetPasswordTemplate, page)
		return
	}

	page.notify(r.toasts.PasswordReset())
	page.Redirect = &redirect{Path: loginPath, After: r.cfg.Auth.ResetPasswordRedirectDelay}
	r.render(ctx, http.StatusOK, resetPasswordTemplate, page)
}

func (r *frontendRouter) DashboardPage(ctx *gin.Context) {
	path := ctx.FullPath()
	title, ok := r.sidebar.Title(path)
	if !ok {
		title = "Dashboard"
	}

	data := dashboardDataModel{
		Sidebar: r.sidebar.WithActive(path),
		Path:    path,
	}
	if session, exists := ctx.Get(sessionKey); exists {
		data.Session, _ = session.(entities.Session)
	}

	r.render(ctx, http.StatusOK, dashboardTemplate, pageDataModel{
		Title: title,
		Data:  data,
	})
}

func resetPasswordAction(token string) string {
	if token == "" {
		return resetPasswordPath
	}
	return fmt.Sprintf("%s?token=%s", resetPasswordPath, url.QueryEscape(token))
}
