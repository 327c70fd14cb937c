package gridview

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URLCreator resolves the target URL for one action button. name is the
// button name taken from the template, row and key identify the record and
// index is the zero-based position of the row within the current page.
//
// Failures such as an unresolvable route are the creator's concern; the
// engine embeds whatever string comes back.
type URLCreator func(name string, row Row, key any, index int) string

// PageURLCreator resolves the URL for one pager control from the target
// zero-based page index.
type PageURLCreator func(page int) string

// NewURLCreator builds the default URLCreator. The route is baseRoute joined
// with the button name; the key is appended as a path segment, or as a query
// parameter named keyField when a custom key field is configured. Switching
// between the two addressing styles therefore never touches button
// definitions:
//
//	NewURLCreator("", "")("view", row, 1, 0)                 -> "/view/1"
//	NewURLCreator("", "user_id")("admin/custom", row, 1, 0)  -> "/admin/custom?user_id=1"
func NewURLCreator(baseRoute string, keyField string) URLCreator {
	return func(name string, _ Row, key any, _ int) string {
		route := strings.TrimRight(baseRoute, "/") + "/" + name

		if keyField == "" {
			return route + "/" + url.PathEscape(fmt.Sprint(key))
		}

		return route + "?" + url.Values{keyField: {fmt.Sprint(key)}}.Encode()
	}
}

// NewPageURLCreator builds the default PageURLCreator. It produces
// "route?page=N&per-page=M" where the page parameter is 1-based and per-page
// is the normalized page size of the supplied state.
func NewPageURLCreator(route string, p Pagination) PageURLCreator {
	perPage := strconv.Itoa(p.NormalizedPageSize())

	return func(page int) string {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page+1))
		q.Set("per-page", perPage)

		return route + "?" + q.Encode()
	}
}
