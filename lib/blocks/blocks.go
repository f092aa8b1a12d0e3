// Package blocks writes and reads the block markers that delimit component
// nodes in serialized markup.
//
// A block looks like:
//
//	<!-- @block-start type:TextWidget id:intro --><p class="TextWidget intro">hi</p><!-- @block-end -->
//
// Type and id are path-escaped so whitespace and "-->" cannot end the
// comment early.
package blocks

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	startKeyword = "@block-start"
	endKeyword   = "@block-end"
)

// Close is the marker ending a block.
const Close = "<!-- " + endKeyword + " -->"

var (
	ErrUnbalanced = errors.New("blocks: unbalanced block markers")
	ErrMalformed  = errors.New("blocks: malformed block marker")
)

// Open returns the marker starting a block for the given node.
func Open(componentType, id string) string {
	return "<!-- " + startKeyword + " type:" + url.PathEscape(componentType) + " id:" + url.PathEscape(id) + " -->"
}

// Wrap surrounds serialized with a block's markers.
func Wrap(componentType, id, serialized string) string {
	return Open(componentType, id) + serialized + Close
}

// Block is a parsed block. Inner holds the markup between the markers,
// including any nested markers.
type Block struct {
	Type     string
	ID       string
	Inner    string
	Children []*Block
}

// Walk calls fn for b and every nested block, pre-order.
func (b *Block) Walk(fn func(*Block)) {
	fn(b)
	for _, c := range b.Children {
		c.Walk(fn)
	}
}

type frame struct {
	block *Block
	inner strings.Builder
}

// Parse reads the top-level blocks in markup. Markup outside any block is
// ignored.
func Parse(markup string) ([]*Block, error) {
	z := html.NewTokenizer(strings.NewReader(markup))

	var roots []*Block
	var stack []*frame

	appendRaw := func(raw string) {
		for _, f := range stack {
			f.inner.WriteString(raw)
		}
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			break
		}

		raw := string(z.Raw())
		if tt != html.CommentToken {
			appendRaw(raw)
			continue
		}

		fields := strings.Fields(string(z.Text()))
		switch {
		case len(fields) > 0 && fields[0] == startKeyword:
			b, err := parseStart(fields[1:])
			if err != nil {
				return nil, err
			}
			appendRaw(raw)
			stack = append(stack, &frame{block: b})
		case len(fields) == 1 && fields[0] == endKeyword:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: end marker without start", ErrUnbalanced)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.block.Inner = top.inner.String()
			appendRaw(raw)
			if len(stack) == 0 {
				roots = append(roots, top.block)
			} else {
				parent := stack[len(stack)-1].block
				parent.Children = append(parent.Children, top.block)
			}
		default:
			appendRaw(raw)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: %d block(s) left open", ErrUnbalanced, len(stack))
	}
	return roots, nil
}

func parseStart(fields []string) (*Block, error) {
	b := &Block{}
	var haveType, haveID bool
	for _, f := range fields {
		key, value, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, f)
		}
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch key {
		case "type":
			b.Type, haveType = unescaped, true
		case "id":
			b.ID, haveID = unescaped, true
		}
	}
	if !haveType || !haveID {
		return nil, fmt.Errorf("%w: missing type or id", ErrMalformed)
	}
	return b, nil
}

// Flatten returns every block in pre-order.
func Flatten(roots []*Block) []*Block {
	var out []*Block
	for _, r := range roots {
		r.Walk(func(b *Block) {
			out = append(out, b)
		})
	}
	return out
}
