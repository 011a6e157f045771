package content

import (
	"fmt"
	"strings"
)

// AboutHero is the About page banner
type AboutHero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
}

// Stat is a headline number with a caption
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Feature is a titled blurb with an icon
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Community describes the community block in the story section
type Community struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// OurStory is the narrative section of the About page
type OurStory struct {
	Title       string    `json:"title"`
	Content     []string  `json:"content"`
	Stats       []Stat    `json:"stats"`
	Credentials []Feature `json:"credentials"`
	ImpactStats []Stat    `json:"impactStats"`
	Community   Community `json:"community"`
	WhyChooseUs []Feature `json:"whyChooseUs"`
}

// Member is a core committee member
type Member struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Image    string `json:"image"`
	Bio      string `json:"bio,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

func (m Member) ItemID() int { return m.ID }

// PolicySection is one ordered section of the payment policy
type PolicySection struct {
	ID      int            `json:"id"`
	Title   string         `json:"title"`
	Icon    string         `json:"icon"`
	Color   string         `json:"color"`
	Content []ContentBlock `json:"content"`
}

func (p PolicySection) ItemID() int { return p.ID }

// PolicyHeader heads the payment policy
type PolicyHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// PaymentPolicy is the payment policy section of the About page
type PaymentPolicy struct {
	Header       PolicyHeader    `json:"header"`
	Sections     []PolicySection `json:"sections"`
	ContactEmail string          `json:"contactEmail"`
}

// WhatWeDo lists the offerings shown on the About page
type WhatWeDo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// AboutDocument is the singleton About page content
type AboutDocument struct {
	HeroSection   AboutHero     `json:"heroSection"`
	OurStory      OurStory      `json:"ourStory"`
	CoreCommittee []Member      `json:"coreCommittee"`
	PaymentPolicy PaymentPolicy `json:"paymentPolicy"`
	WhatWeDo      WhatWeDo      `json:"whatWeDo"`
}

// Validate checks About page invariants
func (d *AboutDocument) Validate() error {
	if id := DuplicateID(d.CoreCommittee); id != 0 {
		return fmt.Errorf("coreCommittee: duplicate id %d", id)
	}
	for _, m := range d.CoreCommittee {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("coreCommittee[%d]: name is required", m.ID)
		}
	}
	if id := DuplicateID(d.PaymentPolicy.Sections); id != 0 {
		return fmt.Errorf("paymentPolicy.sections: duplicate id %d", id)
	}
	for _, s := range d.PaymentPolicy.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("paymentPolicy.sections[%d]: title is required", s.ID)
		}
	}
	return nil
}
