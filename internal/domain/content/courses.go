package content

import (
	"fmt"
	"strings"
)

// Course is one entry of the course catalog
type Course struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Category         string `json:"category"`
	Type             string `json:"type"`
	Duration         string `json:"duration"`
	Enrolled         int    `json:"enrolled"`
	BannerImage      string `json:"bannerImage"`
	Recommended      bool   `json:"recommended"`
	Trending         bool   `json:"trending"`
	MostPurchased    bool   `json:"mostPurchased"`
	TopRanked        bool   `json:"topRanked"`
	CurriculumPDFURL string `json:"curriculumPdfUrl"`
}

func (c Course) ItemID() int { return c.ID }

// CoursesDocument is the singleton course catalog
type CoursesDocument struct {
	Courses []Course `json:"courses"`
}

// Validate checks catalog invariants
func (d *CoursesDocument) Validate() error {
	if id := DuplicateID(d.Courses); id != 0 {
		return fmt.Errorf("courses: duplicate id %d", id)
	}
	for _, c := range d.Courses {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("courses[%d]: title is required", c.ID)
		}
		if c.Enrolled < 0 {
			return fmt.Errorf("courses[%d]: enrolled cannot be negative", c.ID)
		}
	}
	return nil
}
