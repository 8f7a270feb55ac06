package tagmark

import (
	"html"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Surface is one of the two UI elements a Tag owns: the clickable activator
// or the popup content container. The Tag mutates its attributes, inline
// style and inner markup; inserting the rendered element into a layout is the
// caller's job.
type Surface struct {
	name    string
	id      string
	attrs   map[string]string
	style   map[string]string
	inner   string
	emitter *Emitter
}

func newSurface(name, class string) *Surface {
	s := &Surface{
		name:    name,
		id:      uuid.NewString(),
		attrs:   map[string]string{"class": class},
		style:   map[string]string{},
		emitter: NewEmitter(),
	}
	return s
}

// ElementName returns the HTML element name the surface renders as.
func (s *Surface) ElementName() string { return s.name }

// ID returns the surface's generated identity.
func (s *Surface) ID() string { return s.id }

// Emitter returns the surface's own emitter. Handlers registered here see
// only this surface's events, before they bubble to the Tag.
func (s *Surface) Emitter() *Emitter { return s.emitter }

func (s *Surface) Attr(name string) (string, bool) {
	v, ok := s.attrs[name]
	return v, ok
}

func (s *Surface) SetAttr(name, value string) { s.attrs[name] = value }

func (s *Surface) Style(prop string) (string, bool) {
	v, ok := s.style[prop]
	return v, ok
}

func (s *Surface) SetStyle(prop, value string) { s.style[prop] = value }

func (s *Surface) RemoveStyle(prop string) { delete(s.style, prop) }

func (s *Surface) InnerHTML() string { return s.inner }

func (s *Surface) SetInnerHTML(markup string) { s.inner = markup }

// Hidden reports whether the display:none override is present.
func (s *Surface) Hidden() bool { return s.style["display"] == "none" }

// MergeAttributes applies attrs onto s. A class value accumulates onto an
// existing non-empty class, separated by a single space; every other name
// (and a first-time class) overwrites. Returns s.
func MergeAttributes(s *Surface, attrs map[string]string) *Surface {
	for name, value := range attrs {
		if name == "class" {
			if existing, ok := s.attrs["class"]; ok && existing != "" {
				s.attrs["class"] = existing + " " + value
				continue
			}
		}
		s.attrs[name] = value
	}
	return s
}

// Render serializes the surface to an HTML fragment: attributes sorted by
// name and escaped, the inline style map synthesized into a style attribute,
// inner markup included verbatim (it is markup, not text).
func (s *Surface) Render() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(s.name)

	names := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(s.attrs[name]))
		b.WriteByte('"')
	}

	if len(s.style) > 0 {
		props := make([]string, 0, len(s.style))
		for prop := range s.style {
			props = append(props, prop)
		}
		sort.Strings(props)
		b.WriteString(` style="`)
		for i, prop := range props {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(prop)
			b.WriteString(": ")
			b.WriteString(html.EscapeString(s.style[prop]))
		}
		b.WriteByte('"')
	}

	b.WriteByte('>')
	b.WriteString(s.inner)
	b.WriteString("</")
	b.WriteString(s.name)
	b.WriteByte('>')
	return b.String()
}
