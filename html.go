package gridview

import (
	"html"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Markup is a ready-to-embed HTML fragment. Values of this type are trusted
// as-is; plain text enters through EscapeText and attribute values are
// escaped when a tag is serialized.
type Markup string

// Attributes holds the attributes of a single tag, name to value.
type Attributes map[string]string

// Clone returns a shallow copy so state classes can be appended without
// mutating caller-supplied attributes.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}

	ret := make(Attributes, len(a))
	for k, v := range a {
		ret[k] = v
	}

	return ret
}

// AddClass appends classes to the "class" attribute, keeping classes that are
// already set. Empty names are skipped.
func (a Attributes) AddClass(classes ...string) Attributes {
	existing := strings.Fields(a["class"])
	for _, class := range classes {
		if class == "" || slices.Contains(existing, class) {
			continue
		}
		existing = append(existing, class)
	}

	if len(existing) > 0 {
		a["class"] = strings.Join(existing, " ")
	}

	return a
}

// EscapeText escapes plain text for embedding into markup.
func EscapeText(s string) Markup {
	return Markup(html.EscapeString(s))
}

// Tag serializes a single element. Content is embedded as-is, attribute
// values are escaped, and attributes are written in lexical name order so the
// output is deterministic.
func Tag(name string, content Markup, attrs Attributes) Markup {
	keys := lo.Keys(attrs)
	slices.Sort(keys)

	var buf strings.Builder
	buf.WriteByte('<')
	buf.WriteString(name)
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(attrs[k]))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
	buf.WriteString(string(content))
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')

	return Markup(buf.String())
}

// joinMarkup concatenates fragments with a separator.
func joinMarkup(frags []Markup, sep string) Markup {
	parts := make([]string, 0, len(frags))
	for _, frag := range frags {
		parts = append(parts, string(frag))
	}

	return Markup(strings.Join(parts, sep))
}
