// Package nav defines the fixed page order and its keyboard bindings.
package nav

import "time"

// Keys bound on every page.
const (
	KeyForward = "Enter"
	KeyBack    = "Backspace"
)

const (
	aboutStep   = 200 * time.Millisecond
	defaultStep = 100 * time.Millisecond
)

// Page is one stop in the navigation order.
type Page struct {
	Slug  string
	Path  string
	Title string
	// Step spaces the entrance animation of the page's items.
	Step time.Duration
}

var order = []Page{
	{Slug: "about", Path: "/", Title: "about", Step: aboutStep},
	{Slug: "experience", Path: "/experience", Title: "experience", Step: defaultStep},
	{Slug: "achievements", Path: "/achievements", Title: "achievements", Step: defaultStep},
	{Slug: "certifications", Path: "/certifications", Title: "certifications", Step: defaultStep},
	{Slug: "projects", Path: "/projects", Title: "projects", Step: defaultStep},
}

// Pages returns the navigation order.
func Pages() []Page {
	return append([]Page(nil), order...)
}

// Lookup finds a page by slug.
func Lookup(slug string) (Page, bool) {
	i := indexOf(slug)
	if i < 0 {
		return Page{}, false
	}
	return order[i], true
}

// Forward returns the page after slug, wrapping to the first.
func Forward(slug string) (Page, bool) {
	return step(slug, 1)
}

// Back returns the page before slug, wrapping to the last.
func Back(slug string) (Page, bool) {
	return step(slug, -1)
}

// Target resolves the path a key press on slug navigates to.
func Target(slug, key string) (string, bool) {
	var (
		p  Page
		ok bool
	)
	switch key {
	case KeyForward:
		p, ok = Forward(slug)
	case KeyBack:
		p, ok = Back(slug)
	}
	if !ok {
		return "", false
	}
	return p.Path, true
}

func step(slug string, delta int) (Page, bool) {
	i := indexOf(slug)
	if i < 0 {
		return Page{}, false
	}
	n := len(order)
	return order[(i+delta+n)%n], true
}

func indexOf(slug string) int {
	for i, p := range order {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}
