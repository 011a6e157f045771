package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	about, ok := Lookup(DomainAbout)
	require.True(t, ok)
	assert.Equal(t, "referMeData", about.StorageKey)
	assert.True(t, about.HasSection("paymentPolicy"))
	assert.False(t, about.HasSection("menuItems"))

	courses, ok := Lookup(DomainCourses)
	require.True(t, ok)
	assert.Equal(t, "coursesData", courses.StorageKey)

	_, ok = Lookup("pricing")
	assert.False(t, ok)
}

func TestDomains_Sorted(t *testing.T) {
	var names []string
	for _, d := range Domains() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"about", "courses", "footer", "home", "navbar"}, names)
}

func TestDomain_Decode(t *testing.T) {
	home, _ := Lookup(DomainHome)

	doc, err := home.Decode([]byte(`{"hero":{"title":"Hi"},"services":[{"id":1,"title":"A"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "Hi", doc.(*HomeDocument).Hero.Title)

	_, err = home.Decode([]byte(`{"services":[{"id":1,"title":"A"},{"id":1,"title":"B"}]}`))
	assert.ErrorContains(t, err, "duplicate id 1")

	_, err = home.Decode([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = home.Decode([]byte(`{"services":`))
	assert.Error(t, err)
}

func TestDomain_Decode_RejectsBadBlocks(t *testing.T) {
	about, _ := Lookup(DomainAbout)

	_, err := about.Decode([]byte(`{"paymentPolicy":{"sections":[{"id":1,"title":"Fees","content":[{"type":"list"}]}]}}`))
	assert.Error(t, err)
}

func TestNavbarDocument_Validate(t *testing.T) {
	doc := &NavbarDocument{MenuItems: NavMenus{Main: []MenuItem{{ID: 1, Label: "Home", Type: MenuLink}}}}
	assert.ErrorContains(t, doc.Validate(), "requires a path")

	doc.MenuItems.Main[0].Type = "mega"
	assert.ErrorContains(t, doc.Validate(), "unknown type")

	doc.MenuItems.Main[0] = MenuItem{ID: 1, Label: "Events", Type: MenuDropdown, Items: []MenuItem{
		{ID: 1, Label: "Webinars", Type: MenuLink, Path: "/events/webinars"},
		{ID: 1, Label: "Manthan", Type: MenuLink, Path: "/events/manthan"},
	}}
	assert.ErrorContains(t, doc.Validate(), "menuItems.main[1].items: duplicate id 1")

	doc.MenuItems.Main[0].Items[1].ID = 2
	assert.NoError(t, doc.Validate())
}

func TestSeed(t *testing.T) {
	seed, err := Seed()
	require.NoError(t, err)

	for _, d := range Domains() {
		assert.Contains(t, seed.Documents, d.Name)
	}

	var about AboutDocument
	require.NoError(t, json.Unmarshal(seed.Documents[DomainAbout], &about))
	require.Len(t, about.PaymentPolicy.Sections, 2)
	assert.Equal(t, BlockList, about.PaymentPolicy.Sections[0].Content[1].Kind)

	var home HomeDocument
	require.NoError(t, json.Unmarshal(seed.Documents[DomainHome], &home))
	assert.Equal(t, []int{1, 3}, ids(home.Services))

	require.Len(t, seed.Contacts, 3)
	assert.Equal(t, 1, seed.Contacts[0].ID)
	assert.False(t, seed.Contacts[0].Date.IsZero())

	var courses CoursesDocument
	require.NoError(t, json.Unmarshal(seed.Documents[DomainCourses], &courses))
	assert.True(t, courses.Courses[0].Recommended)
	assert.Equal(t, 1240, courses.Courses[0].Enrolled)
	assert.Len(t, seed.Events, 2)
	assert.Len(t, seed.Blogs, 1)
}

func TestParseSeed_InvalidDocument(t *testing.T) {
	_, err := ParseSeed([]byte("courses:\n  courses:\n    - id: 1\n      title: ''\n"))
	assert.ErrorContains(t, err, "title is required")
}

func TestDefault_ReturnsCopy(t *testing.T) {
	first := Default(DomainNavbar)
	require.NotEmpty(t, first)
	first[0] = 'X'

	assert.Equal(t, byte('{'), Default(DomainNavbar)[0])
	assert.Nil(t, Default("pricing"))
}

func TestContact_Validate(t *testing.T) {
	c := &Contact{Name: "Priya", Email: "not-an-email", Message: "hi"}
	assert.ErrorContains(t, c.Validate(), "email")

	c.Email = "priya@example.com"
	assert.NoError(t, c.Validate())
}

func TestEvent_Validate(t *testing.T) {
	e := &Event{Kind: "conference", Title: "x", Date: "2026-01-01"}
	assert.Error(t, e.Validate())

	e.Kind = EventManthan
	assert.NoError(t, e.Validate())
}
