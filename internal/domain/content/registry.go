package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Document is a typed singleton content document
type Document interface {
	Validate() error
}

// Domain describes one singleton content document
type Domain struct {
	Name string
	// StorageKey is the key the editor uses for its local copy
	StorageKey string
	Sections   []string
	New        func() Document
}

// Domain names
const (
	DomainNavbar  = "navbar"
	DomainFooter  = "footer"
	DomainHome    = "home"
	DomainAbout   = "about"
	DomainCourses = "courses"
)

var registry = map[string]Domain{
	DomainNavbar: {
		Name:       DomainNavbar,
		StorageKey: "navbarData",
		Sections:   []string{"logo", "contactInfo", "socialLinks", "menuItems", "theme", "primaryColor", "secondaryColor"},
		New:        func() Document { return &NavbarDocument{} },
	},
	DomainFooter: {
		Name:       DomainFooter,
		StorageKey: "footerData",
		Sections:   []string{"logo", "description", "quickLinks", "courses", "contactInfo", "socialLinks", "copyright", "developer"},
		New:        func() Document { return &FooterDocument{} },
	},
	DomainHome: {
		Name:       DomainHome,
		StorageKey: "homeData",
		Sections:   []string{"hero", "services"},
		New:        func() Document { return &HomeDocument{} },
	},
	DomainAbout: {
		Name:       DomainAbout,
		StorageKey: "referMeData",
		Sections:   []string{"heroSection", "ourStory", "coreCommittee", "paymentPolicy", "whatWeDo"},
		New:        func() Document { return &AboutDocument{} },
	},
	DomainCourses: {
		Name:       DomainCourses,
		StorageKey: "coursesData",
		Sections:   []string{"courses"},
		New:        func() Document { return &CoursesDocument{} },
	},
}

// Lookup returns the descriptor for a domain name
func Lookup(name string) (Domain, bool) {
	d, ok := registry[name]
	return d, ok
}

// Domains returns every registered domain sorted by name
func Domains() []Domain {
	out := make([]Domain, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HasSection reports whether section is a top-level key of the document
func (d Domain) HasSection(section string) bool {
	for _, s := range d.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// Decode parses and validates a whole document
func (d Domain) Decode(data []byte) (Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: body is not valid JSON", d.Name)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%s: document must be a JSON object", d.Name)
	}
	doc := d.New()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return doc, nil
}

// DecodeInto parses a whole document into a caller supplied typed value
func DecodeInto[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	if doc, ok := any(out).(Document); ok {
		return doc.Validate()
	}
	return nil
}
