package navigation

import (
	"fmt"

	"github.com/pkg/errors"
)

// BasePath is the root of every dashboard route
const BasePath = "/dashboard"

// Placeholder is the path of items that only group their sub-items
const Placeholder = "#"

// ErrInvalidSidebar is returned when the sidebar breaks one of its invariants
var ErrInvalidSidebar = errors.New("invalid sidebar")

// Icon is the name of a lucide icon
type Icon string

const (
	IconPanelsTopLeft Icon = "panels-top-left"
	IconCalendar      Icon = "calendar"
	IconUsers         Icon = "users"
	IconUserCog       Icon = "user-cog"
	IconBuilding      Icon = "building-2"
	IconShield        Icon = "shield"
	IconSettings      Icon = "settings"
	IconBellRing      Icon = "bell-ring"
	IconXCircle       Icon = "x-circle"
)

// SubItem is a nested menu entry
type SubItem struct {
	Title string
	Path  string
}

// Item is a top-level menu entry of a group
type Item struct {
	Title    string
	Path     string
	Icon     Icon
	IsActive bool
	SubItems []SubItem
}

// HasSubItems reports whether the item expands into sub-items
func (i Item) HasSubItems() bool {
	return len(i.SubItems) > 0
}

// Navigable reports whether the item's own path is a route
func (i Item) Navigable() bool {
	return i.Path != "" && i.Path != Placeholder
}

// Group is a labelled section of the sidebar
type Group struct {
	ID    int
	Label string
	Items []Item
}

// Sidebar is the ordered list of groups rendered by the dashboard shell
type Sidebar []Group

func path(segment string) string {
	return fmt.Sprintf("%s/%s", BasePath, segment)
}

// SidebarItems returns a fresh copy of the dashboard's sidebar
func SidebarItems() Sidebar {
	return Sidebar{
		{
			ID:    1,
			Label: "Overview",
			Items: []Item{
				{
					Title:    "Dashboard",
					Path:     BasePath,
					Icon:     IconPanelsTopLeft,
					IsActive: true,
				},
			},
		},
		{
			ID:    2,
			Label: "Appointments",
			Items: []Item{
				{
					Title: "Appointments",
					Path:  path("appointments"),
					Icon:  IconCalendar,
					SubItems: []SubItem{
						{Title: "New", Path: path("appointments/new")},
						{Title: "All Appointments", Path: path("appointments/all")},
						{Title: "Failed Jobs", Path: path("appointments/failed")},
					},
				},
			},
		},
		{
			ID:    3,
			Label: "User Management",
			Items: []Item{
				{Title: "Users", Path: path("users"), Icon: IconUsers},
				{Title: "Staff", Path: path("staff"), Icon: IconUserCog},
				{Title: "Tenants", Path: path("tenants"), Icon: IconBuilding},
			},
		},
		{
			ID:    4,
			Label: "Access Control",
			Items: []Item{
				{
					Title: "Roles & Permissions",
					Path:  Placeholder,
					Icon:  IconShield,
					SubItems: []SubItem{
						{Title: "Roles", Path: path("roles")},
						{Title: "Permissions", Path: path("permissions")},
						{Title: "Role Permissions", Path: path("role-permissions")},
					},
				},
				{Title: "Access Tokens", Path: path("personal-tokens"), Icon: IconSettings},
			},
		},
		{
			ID:    5,
			Label: "Services",
			Items: []Item{
				{Title: "Offered Services", Path: path("services"), Icon: IconBellRing},
				{Title: "Failed Jobs", Path: path("failed-jobs"), Icon: IconXCircle},
			},
		},
	}
}

// NewSidebar returns the dashboard's sidebar after checking its invariants
func NewSidebar() (Sidebar, error) {
	sidebar := SidebarItems()
	if err := sidebar.Validate(); err != nil {
		return nil, err
	}
	return sidebar, nil
}

// Validate checks that group ids are unique, that every item leads somewhere
// and that sub-items carry a title and a path
func (s Sidebar) Validate() error {
	ids := map[int]bool{}
	for _, group := range s {
		if ids[group.ID] {
			return errors.Wrapf(ErrInvalidSidebar, "duplicate group id %d", group.ID)
		}
		ids[group.ID] = true

		for _, item := range group.Items {
			if item.Title == "" {
				return errors.Wrapf(ErrInvalidSidebar, "item without title in group %s", group.Label)
			}
			if !item.Navigable() && !item.HasSubItems() {
				return errors.Wrapf(ErrInvalidSidebar, "item %s has neither a path nor sub-items", item.Title)
			}
			for _, sub := range item.SubItems {
				if sub.Title == "" || sub.Path == "" || sub.Path == Placeholder {
					return errors.Wrapf(ErrInvalidSidebar, "sub-item of %s needs a title and a path", item.Title)
				}
			}
		}
	}
	return nil
}

// Routes lists every navigable path in sidebar order, without duplicates
func (s Sidebar) Routes() []string {
	var routes []string
	seen := map[string]bool{}
	add := func(p string) {
		if p == "" || p == Placeholder || seen[p] {
			return
		}
		seen[p] = true
		routes = append(routes, p)
	}

	for _, group := range s {
		for _, item := range group.Items {
			add(item.Path)
			for _, sub := range item.SubItems {
				add(sub.Path)
			}
		}
	}
	return routes
}

// WithActive returns a copy of the sidebar where only the item matching
// currentPath, directly or through one of its sub-items, is marked active
func (s Sidebar) WithActive(currentPath string) Sidebar {
	out := make(Sidebar, len(s))
	for gi, group := range s {
		items := make([]Item, len(group.Items))
		for ii, item := range group.Items {
			item.IsActive = item.matches(currentPath)
			if item.SubItems != nil {
				item.SubItems = append([]SubItem(nil), item.SubItems...)
			}
			items[ii] = item
		}
		group.Items = items
		out[gi] = group
	}
	return out
}

// Title returns the menu title of the entry with the given path
func (s Sidebar) Title(currentPath string) (string, bool) {
	for _, group := range s {
		for _, item := range group.Items {
			for _, sub := range item.SubItems {
				if sub.Path == currentPath {
					return sub.Title, true
				}
			}
			if item.Navigable() && item.Path == currentPath {
				return item.Title, true
			}
		}
	}
	return "", false
}

func (i Item) matches(currentPath string) bool {
	if i.Navigable() && i.Path == currentPath {
		return true
	}
	for _, sub := range i.SubItems {
		if sub.Path == currentPath {
			return true
		}
	}
	return false
}
