package gridview

import (
	"fmt"
	"strconv"
)

// Label configures the text of one pager control. The zero value keeps the
// control's default behavior; LabelHidden removes the control entirely and
// LabelPageNumber substitutes the literal target page number, the way a
// boolean true/false pair would in a property bag. Label text is embedded as
// markup, so entities such as "&laquo;" stay intact.
type Label struct {
	kind labelKind
	text string
}

type labelKind int

const (
	labelDefault labelKind = iota
	labelHidden
	labelPageNumber
	labelText
)

// LabelText returns a Label with explicit text.
func LabelText(s string) Label {
	return Label{kind: labelText, text: s}
}

// LabelPageNumber returns a Label that renders the target page number.
func LabelPageNumber() Label {
	return Label{kind: labelPageNumber}
}

// LabelHidden returns a Label that removes the control.
func LabelHidden() Label {
	return Label{kind: labelHidden}
}

// resolve returns the label for a control targeting the zero-based page, and
// false when the control is hidden. def == "" means the control is off unless
// configured, which is how first/last stay hidden by default.
func (l Label) resolve(page int, def string) (string, bool) {
	switch l.kind {
	case labelHidden:
		return "", false
	case labelPageNumber:
		return strconv.Itoa(page + 1), true
	case labelText:
		return l.text, true
	default:
		if def == "" {
			return "", false
		}
		return def, true
	}
}

// LinkPager renders a pagination bar: optional first/prev boundary controls,
// a window of numbered page links and next/last boundary controls, in that
// fixed order.
//
// All fields are read at render time; configure before rendering and do not
// mutate mid-render. The zero value plus a Pagination is usable.
type LinkPager struct {
	// Pagination - required paging state. Rendering without it is a
	// configuration error.
	Pagination *Pagination

	// URLCreator resolves control URLs. Defaults to NewPageURLCreator("",
	// *Pagination). Disabled controls never consult it.
	URLCreator PageURLCreator

	// FirstPageLabel - label of the "first page" control. Hidden by default.
	FirstPageLabel Label
	// PrevPageLabel - label of the "previous page" control. Default "&laquo;".
	PrevPageLabel Label
	// NextPageLabel - label of the "next page" control. Default "&raquo;".
	NextPageLabel Label
	// LastPageLabel - label of the "last page" control. Hidden by default.
	LastPageLabel Label

	// ListTag and ListOptions describe the surrounding list element.
	// Default <ul class="pagination">.
	ListTag     string
	ListOptions Attributes

	// ItemTag wraps each control. Default "li".
	ItemTag string

	// Per-role CSS classes for the item wrappers. Page buttons carry no class
	// unless PageCSSClass is set.
	PageCSSClass      string
	FirstPageCSSClass string
	PrevPageCSSClass  string
	NextPageCSSClass  string
	LastPageCSSClass  string

	// ActivePageCSSClass marks the current page. Default "active".
	ActivePageCSSClass string
	// DisabledPageCSSClass marks disabled controls. Default "disabled".
	DisabledPageCSSClass string

	// DisabledListItemSubTagName wraps the label of a disabled control in
	// place of an anchor, so disabled controls never carry a navigable URL.
	// Default "span".
	DisabledListItemSubTagName string

	// DisableCurrentPageButton renders the current page button disabled while
	// keeping its active styling.
	DisableCurrentPageButton bool

	// HideOnSinglePage suppresses all output when there are fewer than two
	// pages.
	HideOnSinglePage bool
}

const (
	defaultPrevPageLabel = "&laquo;"
	defaultNextPageLabel = "&raquo;"
)

// Render renders the whole pagination bar. An empty Markup with a nil error
// means every control resolved hidden.
func (p *LinkPager) Render() (Markup, error) {
	controls, err := p.RenderControls()
	if err != nil {
		return "", err
	}
	if len(controls) == 0 {
		return "", nil
	}

	listTag := p.ListTag
	if listTag == "" {
		listTag = "ul"
	}
	listAttrs := p.ListOptions
	if listAttrs == nil {
		listAttrs = Attributes{"class": "pagination"}
	}

	return Tag(listTag, joinMarkup(controls, ""), listAttrs), nil
}

// RenderControls returns the individual control fragments in render order:
// first, prev, the numbered window, next, last.
func (p *LinkPager) RenderControls() ([]Markup, error) {
	if p == nil || p.Pagination == nil {
		return nil, fmt.Errorf("cannot render link pager: missing pagination state")
	}

	state := *p.Pagination
	if p.HideOnSinglePage && state.PageCount < 2 {
		return nil, nil
	}

	var controls []Markup

	// First page.
	if label, ok := p.FirstPageLabel.resolve(0, ""); ok {
		controls = append(controls,
			p.renderControl(label, 0, p.FirstPageCSSClass, state.IsFirst(), false))
	}

	// Previous page.
	if label, ok := p.PrevPageLabel.resolve(state.PrevPage(), defaultPrevPageLabel); ok {
		controls = append(controls,
			p.renderControl(label, state.PrevPage(), p.PrevPageCSSClass, state.IsFirst(), false))
	}

	// Numbered window.
	begin, end := state.Window()
	for i := begin; i <= end; i++ {
		active := i == state.Page
		disabled := p.DisableCurrentPageButton && active
		controls = append(controls,
			p.renderControl(strconv.Itoa(i+1), i, p.PageCSSClass, disabled, active))
	}

	// Next page.
	if label, ok := p.NextPageLabel.resolve(state.NextPage(), defaultNextPageLabel); ok {
		controls = append(controls,
			p.renderControl(label, state.NextPage(), p.NextPageCSSClass, state.IsLast(), false))
	}

	// Last page.
	if label, ok := p.LastPageLabel.resolve(state.PageCount-1, ""); ok {
		controls = append(controls,
			p.renderControl(label, state.PageCount-1, p.LastPageCSSClass, state.IsLast(), false))
	}

	return controls, nil
}

// renderControl renders one pager item. Every control records its target page
// in a data-page attribute; only enabled controls get an anchor and a URL.
func (p *LinkPager) renderControl(label string, page int, class string, disabled, active bool) Markup {
	itemAttrs := Attributes{}.AddClass(class)
	if active {
		itemAttrs.AddClass(p.activeClass())
	}
	if disabled {
		itemAttrs.AddClass(p.disabledClass())
	}

	linkAttrs := Attributes{"data-page": strconv.Itoa(page)}

	var inner Markup
	if disabled {
		subTag := p.DisabledListItemSubTagName
		if subTag == "" {
			subTag = "span"
		}
		inner = Tag(subTag, Markup(label), linkAttrs)
	} else {
		linkAttrs["href"] = p.pageURL(page)
		inner = Tag("a", Markup(label), linkAttrs)
	}

	itemTag := p.ItemTag
	if itemTag == "" {
		itemTag = "li"
	}

	return Tag(itemTag, inner, itemAttrs)
}

func (p *LinkPager) pageURL(page int) string {
	if p.URLCreator != nil {
		return p.URLCreator(page)
	}

	return NewPageURLCreator("", *p.Pagination)(page)
}

func (p *LinkPager) activeClass() string {
	if p.ActivePageCSSClass != "" {
		return p.ActivePageCSSClass
	}

	return "active"
}

func (p *LinkPager) disabledClass() string {
	if p.DisabledPageCSSClass != "" {
		return p.DisabledPageCSSClass
	}

	return "disabled"
}
