package content

// FooterLink is a labelled link in a footer column
type FooterLink struct {
	Text string `json:"text"`
	Path string `json:"path"`
}

// FooterSocial is an icon link in the footer
type FooterSocial struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

// FooterContact is the address block in the footer
type FooterContact struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Developer credits the site developer
type Developer struct {
	Text string `json:"text"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// FooterDocument is the singleton footer content
type FooterDocument struct {
	Logo        Logo           `json:"logo"`
	Description string         `json:"description"`
	QuickLinks  []FooterLink   `json:"quickLinks"`
	Courses     []FooterLink   `json:"courses"`
	ContactInfo FooterContact  `json:"contactInfo"`
	SocialLinks []FooterSocial `json:"socialLinks"`
	Copyright   string         `json:"copyright"`
	Developer   Developer      `json:"developer"`
}

// Validate has nothing to check; footer lists are positional.
func (d *FooterDocument) Validate() error {
	return nil
}
