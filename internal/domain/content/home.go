package content

import (
	"fmt"
	"strings"
)

// HomeHero is the landing banner
type HomeHero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink"`
	BackgroundImage string `json:"backgroundImage"`
}

// Service is one card in the home page services grid
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (s Service) ItemID() int { return s.ID }

// HomeDocument is the singleton home page content
type HomeDocument struct {
	Hero     HomeHero  `json:"hero"`
	Services []Service `json:"services"`
}

// Validate checks home page invariants
func (d *HomeDocument) Validate() error {
	if id := DuplicateID(d.Services); id != 0 {
		return fmt.Errorf("services: duplicate id %d", id)
	}
	for _, s := range d.Services {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("services[%d]: title is required", s.ID)
		}
	}
	return nil
}
