package models

// Slide is the extracted content of a single presentation slide.
type Slide struct {
	Number int      `json:"slide_number"`
	Title  string   `json:"title"`
	Body   []string `json:"content"`
	Notes  string   `json:"notes"`
}

// PresentationContent is the read-only result of deck extraction.
type PresentationContent struct {
	SlideCount int     `json:"slide_count"`
	Slides     []Slide `json:"slides"`
}

// SlideLayout names the supported slide layouts for reconstruction.
type SlideLayout string

const (
	LayoutTitleSlide      SlideLayout = "Title Slide"
	LayoutTitleAndContent SlideLayout = "Title and Content"
	LayoutTwoContent      SlideLayout = "Two Content"
	LayoutSectionHeader   SlideLayout = "Section Header"
)

// SlideContent maps layout-dependent field names (subtitle, bullets, left, right)
// to either a string or a list of strings, as the generator emits them.
type SlideContent map[string]interface{}

// Strings returns the named field normalized to a list of lines.
func (c SlideContent) Strings(key string) []string {
	v, ok := c[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []interface{}:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// String returns the named field as a single string.
func (c SlideContent) String(key string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	return ""
}

type SlideSpec struct {
	Title   string       `json:"title"`
	Layout  SlideLayout  `json:"layout"`
	Content SlideContent `json:"content"`
}

// PresentationStructure is a full deck outline; refinement always produces a
// new structure rather than mutating the input.
type PresentationStructure struct {
	Slides []SlideSpec `json:"slides"`
}
