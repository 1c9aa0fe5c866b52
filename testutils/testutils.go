package testutils

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

// AddRequestWithFormParamsToCtx attaches a request with given method and form params to the context
func AddRequestWithFormParamsToCtx(ctx *gin.Context, method string, params map[string]string) {
	AddRequestWithFormAndQueryParamsToCtx(ctx, method, params, nil)
}

// AddRequestWithFormAndQueryParamsToCtx attaches a request with given method, form params and query params to the context
func AddRequestWithFormAndQueryParamsToCtx(ctx *gin.Context, method string, params map[string]string, query map[string]string) {
	data := url.Values{}
	for key, val := range params {
		data.Add(key, val)
	}

	target := "/test"
	if len(query) > 0 {
		q := url.Values{}
		for key, val := range query {
			q.Add(key, val)
		}
		target = fmt.Sprintf("%s?%s", target, q.Encode())
	}

	req := httptest.NewRequest(method, target, bytes.NewBufferString(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; param=value")
	ctx.Request = req
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	initialValues := map[string]string{}
	unsetVars := map[string]bool{}

	for name, value := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		} else {
			unsetVars[name] = true
		}

		err := os.Setenv(name, value)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}

		for name := range unsetVars {
			err := os.Unsetenv(name)
			if err != nil {
				panic(err)
			}
		}
	}
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	initialValues := map[string]string{}
	for _, name := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		}

		err := os.Unsetenv(name)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}
	}
}

// RouterGroupMatcher matches gin router groups with given path
type RouterGroupMatcher struct {
	// Path is the base path of the router groups to match
	Path string
}

// Matches implements the gomock.Matcher interface
func (r RouterGroupMatcher) Matches(x interface{}) bool {
	group, ok := x.(*gin.RouterGroup)
	if !ok || group == nil {
		return false
	}
	return group.BasePath() == r.Path
}

func (r RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group's base path is %s", r.Path)
}
