package arguments

import (
	"strings"

	"github.com/arthur-debert/splice/pkg/types"
)

// DefaultMaxFields is used when the caller passes a non-positive maximum
const DefaultMaxFields = 128

// Parse splits raw into at most maxFields fields and decodes each of them.
// A malformed structured literal fails the whole list with an ErrParse error.
func Parse(raw string, maxFields int) (types.ArgumentList, error) {
	if maxFields <= 0 {
		maxFields = DefaultMaxFields
	}

	fields := Split(raw, maxFields)
	args := make(types.ArgumentList, 0, len(fields))
	for _, field := range fields {
		arg, err := decodeField(field)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// Split cuts raw on top-level commas into at most maxFields pieces. Once
// maxFields-1 cuts have been made, the remainder of raw, commas included,
// is appended to the final piece. Pieces are not trimmed.
//
// A quote only opens a quoted run when it starts a field or sits inside
// brackets; inside a bare token such as o'brien.html it is plain text.
func Split(raw string, maxFields int) []string {
	if maxFields <= 0 {
		maxFields = DefaultMaxFields
	}

	var (
		fields []string
		quote  byte
		depth  int
		start  int
		bare   bool
	)

	for i := 0; i < len(raw) && len(fields) < maxFields-1; i++ {
		c := raw[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case (c == '\'' || c == '"') && (depth > 0 || !bare):
			quote = c
			bare = true
		case c == '{' || c == '[' || c == '(':
			depth++
			bare = true
		case c == '}' || c == ']' || c == ')':
			if depth > 0 {
				depth--
			}
			bare = true
		case c == ',' && depth == 0:
			fields = append(fields, raw[start:i])
			start = i + 1
			bare = false
		case c != ' ' && c != '\t':
			bare = true
		}
	}

	// Whatever the bounded scan did not consume belongs to the last field.
	return append(fields, raw[start:])
}

func decodeField(field string) (types.Argument, error) {
	item := strings.TrimSpace(field)

	if len(item) >= 2 {
		first, last := item[0], item[len(item)-1]
		switch {
		case first == '\'' && last == '\'', first == '"' && last == '"':
			return types.Argument{Kind: types.ArgLiteral, Text: item[1 : len(item)-1]}, nil
		case first == '{' && last == '}':
			obj, err := ParseObject(item)
			if err != nil {
				return types.Argument{}, err
			}
			return types.Argument{Kind: types.ArgObject, Text: item, Object: obj}, nil
		}
	}

	return types.Argument{Kind: types.ArgRaw, Text: item}, nil
}
