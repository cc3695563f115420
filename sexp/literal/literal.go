package literal

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-sexp/sexp"
)

// ConsTag is the YAML tag that turns a two-item sequence into a pair.
const ConsTag = "!cons"

// MaxAliasExpansions caps how many aliases one document may resolve.
const MaxAliasExpansions = 10000

// Parse decodes a single YAML document:
//
//   - scalars become nil, bool, int, float64 or string
//   - sequences become []any
//   - mappings become *sexp.Object with keys in document order
//   - a sequence tagged !cons with exactly two items becomes
//     sexp.Cons[any, any]
//
// Aliases are resolved to the value of their anchor. An alias that refers
// to a node enclosing it fails with [ErrAliasCycle]; more than
// [MaxAliasExpansions] resolutions fail with [ErrAliasLimit].
func Parse(src string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, errors.Wrap(err, "literal: parse")
	}
	if len(doc.Content) == 0 {
		return nil, errors.WithStack(ErrEmpty)
	}
	d := decoder{resolving: make(map[*yaml.Node]bool)}
	return d.decode(doc.Content[0])
}

// ParseAll parses every source with [Parse]. The error names the 1-based
// position of the first source that fails.
func ParseAll(srcs []string) ([]any, error) {
	out := make([]any, len(srcs))
	for i, src := range srcs {
		v, err := Parse(src)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

type decoder struct {
	resolving map[*yaml.Node]bool
	aliases   int
}

func (d *decoder) decode(n *yaml.Node) (any, error) {
	if n.Tag == ConsTag {
		return d.decodeCons(n)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.decodeAlias(n)
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	case yaml.MappingNode:
		obj, err := d.decodeMapping(n)
		if err != nil {
			return nil, err
		}
		return obj, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "literal: line %d column %d", n.Line, n.Column)
		}
		return v, nil
	}
}

func (d *decoder) decodeAlias(n *yaml.Node) (any, error) {
	d.aliases++
	if d.aliases > MaxAliasExpansions {
		return nil, errors.Wrapf(ErrAliasLimit, "line %d column %d", n.Line, n.Column)
	}
	if d.resolving[n.Alias] {
		return nil, errors.Wrapf(ErrAliasCycle, "*%s at line %d column %d", n.Value, n.Line, n.Column)
	}
	d.resolving[n.Alias] = true
	defer delete(d.resolving, n.Alias)
	return d.decode(n.Alias)
}

func (d *decoder) decodeCons(n *yaml.Node) (any, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return nil, errors.Wrapf(ErrBadCons, "line %d column %d", n.Line, n.Column)
	}
	car, err := d.decode(n.Content[0])
	if err != nil {
		return nil, err
	}
	cdr, err := d.decode(n.Content[1])
	if err != nil {
		return nil, err
	}
	return sexp.New(car, cdr), nil
}

func (d *decoder) decodeMapping(n *yaml.Node) (*sexp.Object, error) {
	obj := sexp.NewObject()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.AliasNode {
			k = k.Alias
		}
		if k.Kind != yaml.ScalarNode {
			return nil, errors.Wrapf(ErrBadKey, "line %d column %d", k.Line, k.Column)
		}
		val, err := d.decode(v)
		if err != nil {
			return nil, err
		}
		obj.Set(k.Value, val)
	}
	return obj, nil
}
