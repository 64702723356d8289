package arguments

import (
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const literalFilename = "<directive argument>"

// ParseObject parses a {...} structured literal. Keys may be bare
// identifiers or quoted strings and either ':' or '=' separates a key from
// its value, so both {x:1} and {"x": 1} are accepted. Variables, function
// calls and trailing text are rejected.
func ParseObject(src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), literalFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, errors.Wrap(diags, errors.ErrParse, "malformed object literal").
			WithDetail("literal", src)
	}

	if _, ok := expr.(*hclsyntax.ObjectConsExpr); !ok {
		return cty.NilVal, errors.New(errors.ErrParse, "structured literal must be an object").
			WithDetail("literal", src)
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, errors.Wrap(diags, errors.ErrParse, "cannot evaluate object literal").
			WithDetail("literal", src)
	}
	return val, nil
}

// ObjectContext flattens one level of an object or map value into a
// Context. String attributes become string values, everything else stays
// structured.
func ObjectContext(obj cty.Value) (types.Context, error) {
	if obj == cty.NilVal || obj.IsNull() {
		return types.EmptyContext(), nil
	}

	ty := obj.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return types.Context{}, errors.Newf(errors.ErrParse, "expected an object, got %s", ty.FriendlyName())
	}
	if !obj.IsWhollyKnown() {
		return types.Context{}, errors.New(errors.ErrParse, "object literal has unknown values")
	}

	values := make(map[string]types.Value)
	for key, attr := range obj.AsValueMap() {
		if attr.Type().Equals(cty.String) && !attr.IsNull() {
			values[key] = types.String(attr.AsString())
			continue
		}
		values[key] = types.Structured(attr)
	}
	return types.NewContext(values), nil
}
