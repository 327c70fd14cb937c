package gridview

import (
	"regexp"

	"github.com/samber/lo"
)

// _tokenPattern matches a single {name} placeholder. Word characters, dashes
// and slashes are all part of the name, so namespaced buttons such as
// {admin/custom} and dashed names such as {show-items} are one token each,
// never a parse error.
var _tokenPattern = regexp.MustCompile(`\{([\w\-/]+)\}`)

// TemplateTokens extracts placeholder names from template in order of first
// occurrence. Repeated tokens are dropped, the first occurrence wins.
func TemplateTokens(template string) []string {
	matches := _tokenPattern.FindAllStringSubmatch(template, -1)

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}

	return lo.Uniq(tokens)
}
