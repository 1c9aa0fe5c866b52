package frontend

import (
	"strconv"
	"time"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/entities"
	"github.com/Jody-Heid/beautyqueue-frontend/forms"
	"github.com/Jody-Heid/beautyqueue-frontend/navigation"
	"github.com/Jody-Heid/beautyqueue-frontend/toast"
)

type pageDataModel struct {
	Cfg      *config.AppConfig
	Title    string
	Action   string
	Toast    *toast.Toast
	Redirect *redirect
	Values   map[string]string
	Errors   forms.FieldErrors
	// Password is how password inputs are displayed when the page loads
	Password forms.Visibility
	Data     interface{}
}

func (p *pageDataModel) notify(t toast.Toast) {
	p.Toast = &t
}

// redirect is a navigation the rendered page performs on its own after a delay.
// It is scheduled by the page, so it is dropped together with the page.
type redirect struct {
	Path  string
	After time.Duration
}

// Seconds formats the delay for a meta refresh
func (r redirect) Seconds() string {
	return strconv.FormatFloat(r.After.Seconds(), 'f', -1, 64)
}

type dashboardDataModel struct {
	Session entities.Session
	Sidebar navigation.Sidebar
	Path    string
}
