package directives

import (
	"regexp"

	"github.com/arthur-debert/splice/pkg/types"
)

// directivePattern matches @@name(args). args is the shortest run up to
// the first closing parenthesis on the same line.
var directivePattern = regexp.MustCompile(`@@([A-Za-z_][A-Za-z0-9_]*)\s*\((.*?)\)`)

// Scan returns every directive invocation in content, in source order.
// Offsets refer to content as given.
func Scan(content string) []types.Invocation {
	matches := directivePattern.FindAllStringSubmatchIndex(content, -1)
	invocations := make([]types.Invocation, 0, len(matches))
	for _, m := range matches {
		invocations = append(invocations, types.Invocation{
			Start:   m[0],
			End:     m[1],
			Text:    content[m[0]:m[1]],
			Name:    content[m[2]:m[3]],
			RawArgs: content[m[4]:m[5]],
		})
	}
	return invocations
}
