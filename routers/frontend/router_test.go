package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/environment"
	"github.com/Jody-Heid/beautyqueue-frontend/forms"
	mock_services "github.com/Jody-Heid/beautyqueue-frontend/mocks/services"
	"github.com/Jody-Heid/beautyqueue-frontend/navigation"
	"github.com/Jody-Heid/beautyqueue-frontend/testutils"
	"github.com/Jody-Heid/beautyqueue-frontend/toast"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{
		environment.JWTSecret: "verysecret",
	})
	env := environment.NewEnv(zap.NewNop())
	restoreVars()

	ctrl := gomock.NewController(t)
	mockAuthService := mock_services.NewMockAuthService(ctrl)

	validator, err := forms.NewValidator()
	require.NoError(t, err)

	cfg := &config.AppConfig{Name: "test"}
	router := NewRouter(zap.NewNop(), cfg, env, mockAuthService, validator, toast.NewCatalog(cfg), navigation.SidebarItems())

	tests := []struct {
		route  string
		method string
	}{
		{route: "/", method: http.MethodGet},
		{route: "/auth/login", method: http.MethodGet},
		{route: "/auth/login", method: http.MethodPost},
		{route: "/auth/logout", method: http.MethodGet},
		{route: "/auth/staff/forgot-password", method: http.MethodGet},
		{route: "/auth/staff/forgot-password", method: http.MethodPost},
		{route: "/auth/staff/reset-password", method: http.MethodGet},
		{route: "/auth/staff/reset-password", method: http.MethodPost},
	}
	for _, route := range navigation.SidebarItems().Routes() {
		tests = append(tests, struct {
			route  string
			method string
		}{route: route, method: http.MethodGet})
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, testServer := gin.CreateTestContext(w)

			router.RegisterRoutes(&testServer.RouterGroup)

			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.LoadHTMLGlob("../../templates/*/*.gohtml")
			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
