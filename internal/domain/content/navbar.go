package content

import "fmt"

// MenuItem types
const (
	MenuLink     = "link"
	MenuDropdown = "dropdown"
)

// Logo is the site logo shown in the navbar and footer
type Logo struct {
	Image  string `json:"image"`
	Alt    string `json:"alt"`
	Height string `json:"height,omitempty"`
}

// NavContactInfo is the contact strip above the navbar
type NavContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SocialLink points to one social network profile
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// MenuItem is a navbar entry. Dropdowns nest further items.
type MenuItem struct {
	ID    int        `json:"id"`
	Label string     `json:"label"`
	Path  string     `json:"path,omitempty"`
	Type  string     `json:"type"`
	Items []MenuItem `json:"items,omitempty"`
}

func (m MenuItem) ItemID() int { return m.ID }

// CourseMenuItem is an entry of the courses mega menu
type CourseMenuItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

func (c CourseMenuItem) ItemID() int { return c.ID }

// NavMenus groups the main menu and the courses menu
type NavMenus struct {
	Main    []MenuItem       `json:"main"`
	Courses []CourseMenuItem `json:"courses"`
}

// NavbarDocument is the singleton navbar content
type NavbarDocument struct {
	Logo           Logo           `json:"logo"`
	ContactInfo    NavContactInfo `json:"contactInfo"`
	SocialLinks    []SocialLink   `json:"socialLinks"`
	MenuItems      NavMenus       `json:"menuItems"`
	Theme          string         `json:"theme"`
	PrimaryColor   string         `json:"primaryColor"`
	SecondaryColor string         `json:"secondaryColor"`
}

// Validate checks navbar invariants
func (d *NavbarDocument) Validate() error {
	if err := validateMenu("menuItems.main", d.MenuItems.Main); err != nil {
		return err
	}
	if id := DuplicateID(d.MenuItems.Courses); id != 0 {
		return fmt.Errorf("menuItems.courses: duplicate id %d", id)
	}
	return nil
}

func validateMenu(path string, items []MenuItem) error {
	if id := DuplicateID(items); id != 0 {
		return fmt.Errorf("%s: duplicate id %d", path, id)
	}
	for _, item := range items {
		switch item.Type {
		case MenuLink, "":
			if item.Path == "" {
				return fmt.Errorf("%s[%d]: link requires a path", path, item.ID)
			}
		case MenuDropdown:
			if err := validateMenu(fmt.Sprintf("%s[%d].items", path, item.ID), item.Items); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s[%d]: unknown type %q", path, item.ID, item.Type)
		}
	}
	return nil
}
