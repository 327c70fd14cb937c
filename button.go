package gridview

import (
	"github.com/samber/lo"
)

// ButtonRenderer produces the markup of a single action button from the
// resolved URL and row context.
type ButtonRenderer func(url string, row Row, key any) Markup

// Visibility gates one button per row: either a constant or a predicate over
// the row context. A missing entry in the visibility map means always
// visible; the Visibility zero value hides the button.
type Visibility struct {
	predicate func(row Row, key any, index int) bool
	constant  bool
}

// Visible returns a constant Visibility.
func Visible(v bool) Visibility {
	return Visibility{constant: v}
}

// VisibleWhen returns a predicate Visibility. The predicate is re-evaluated
// with the current row, key and index on every render call, never memoized.
func VisibleWhen(fn func(row Row, key any, index int) bool) Visibility {
	return Visibility{predicate: fn}
}

// Resolve reports whether the button is visible for the given row context.
func (v Visibility) Resolve(row Row, key any, index int) bool {
	if v.predicate != nil {
		return v.predicate(row, key, index)
	}

	return v.constant
}

// ActiveButton pairs a registered button with its name, in template order.
type ActiveButton struct {
	Name   string
	Render ButtonRenderer
}

// ActionButtons resolves a placeholder template against a registry of named
// buttons and renders the matched, visible subset for one row.
//
// Configuration happens through the With* methods before rendering and is
// read-only during it. Visibility is late-bound: overriding an entry between
// two renders of the same row flips exactly that button.
type ActionButtons struct {
	buttons    map[string]ButtonRenderer
	visible    map[string]Visibility
	urlCreator URLCreator
	cellTag    string
	cellAttrs  Attributes
}

const deleteButtonName = "delete"

// NewActionButtons returns a resolver seeded with the builtin view, update
// and delete buttons, the default URL creator rooted at "" and a "td" row
// cell.
func NewActionButtons() *ActionButtons {
	return &ActionButtons{
		buttons: map[string]ButtonRenderer{
			"view":           DefaultButton("view", "View", false),
			"update":         DefaultButton("update", "Update", false),
			deleteButtonName: DefaultButton(deleteButtonName, "Delete", true),
		},
		visible:    map[string]Visibility{},
		urlCreator: NewURLCreator("", ""),
		cellTag:    "td",
	}
}

// WithButtons merges defs into the registry. Later registrations for the same
// name overwrite earlier ones.
func (b *ActionButtons) WithButtons(defs map[string]ButtonRenderer) *ActionButtons {
	if b == nil {
		b = NewActionButtons()
	}

	for name, render := range defs {
		b.buttons[name] = render
	}

	return b
}

// WithButtonLabel re-registers name as a builtin-style anchor with a custom
// label. The delete button keeps its confirmation attributes.
func (b *ActionButtons) WithButtonLabel(name, label string) *ActionButtons {
	return b.WithButtons(map[string]ButtonRenderer{
		name: DefaultButton(name, label, name == deleteButtonName),
	})
}

// WithVisibility merges rules into the visibility map. Entries for names that
// are not registered are kept and simply never consulted.
func (b *ActionButtons) WithVisibility(rules map[string]Visibility) *ActionButtons {
	if b == nil {
		b = NewActionButtons()
	}

	for name, rule := range rules {
		b.visible[name] = rule
	}

	return b
}

// WithURLCreator replaces the URL creation capability.
func (b *ActionButtons) WithURLCreator(create URLCreator) *ActionButtons {
	if b == nil {
		b = NewActionButtons()
	}

	b.urlCreator = create

	return b
}

// WithCell sets the row-cell container tag and its attributes. An empty tag
// keeps the default "td".
func (b *ActionButtons) WithCell(tag string, attrs Attributes) *ActionButtons {
	if b == nil {
		b = NewActionButtons()
	}

	if tag != "" {
		b.cellTag = tag
	}
	b.cellAttrs = attrs

	return b
}

// ActiveButtons scans template left to right and returns the registered
// buttons whose names appear as tokens, preserving template order rather than
// registration order. Tokens with no matching entry are omitted; an empty
// result is a valid state, not an error.
func (b *ActionButtons) ActiveButtons(template string) []ActiveButton {
	if b == nil {
		return nil
	}

	tokens := TemplateTokens(template)
	active := make([]ActiveButton, 0, len(tokens))
	for _, name := range tokens {
		if render, ok := b.buttons[name]; ok {
			active = append(active, ActiveButton{Name: name, Render: render})
		}
	}

	return active
}

// RenderRow renders the action cell for one row. Buttons appear in template
// order, separated by a single space and wrapped in the configured cell tag.
// A button whose visibility resolves false for this row produces no output at
// all, it is skipped rather than rendered disabled.
//
// Visibility predicates and button renderers run synchronously on the
// caller's goroutine; the engine does not recover their panics.
func (b *ActionButtons) RenderRow(template string, row Row, key any, index int) Markup {
	if b == nil {
		return ""
	}

	active := b.ActiveButtons(template)
	frags := make([]Markup, 0, len(active))
	for _, button := range active {
		if rule, ok := b.visible[button.Name]; ok && !rule.Resolve(row, key, index) {
			continue
		}

		target := b.urlCreator(button.Name, row, key, index)
		frags = append(frags, button.Render(target, row, key))
	}

	return Tag(b.cellTag, joinMarkup(frags, " "), b.cellAttrs)
}

// DefaultButton builds a builtin-style anchor renderer: the label inside an
// anchor carrying title, aria-label and data-name attributes. confirm adds
// the data-confirm prompt and data-method="post" pair that signals the
// consumer's client-side delete contract; nothing here executes it.
func DefaultButton(name, label string, confirm bool) ButtonRenderer {
	if label == "" {
		label = lo.Capitalize(name)
	}

	return func(target string, _ Row, _ any) Markup {
		attrs := Attributes{
			"href":       target,
			"title":      label,
			"aria-label": label,
			"data-name":  name,
		}
		if confirm {
			attrs["data-confirm"] = "Are you sure you want to delete this item?"
			attrs["data-method"] = "post"
		}

		return Tag("a", EscapeText(label), attrs)
	}
}
