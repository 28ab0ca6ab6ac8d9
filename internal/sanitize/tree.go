package sanitize

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TreeStrategy is the structured sanitization mode: it parses the input into
// a node tree, prunes and rewrites it under the policy, and serializes the
// result. The scratch tree is local to each call and discarded afterwards.
type TreeStrategy struct {
	policy *Policy
}

// NewTreeStrategy returns a structured-mode strategy bound to p.
func NewTreeStrategy(p *Policy) *TreeStrategy {
	return &TreeStrategy{policy: p}
}

// Name identifies the strategy in logs.
func (t *TreeStrategy) Name() string { return "tree" }

// Sanitize parses input as a body fragment, cleans the tree, and renders it
// back to a string. It errors only when tree construction itself fails;
// per-node policy violations are handled by pruning, not by failing the call.
func (t *TreeStrategy) Sanitize(input string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	// Re-parent the fragment under a scratch container so unwrapping can
	// splice children at the top level too.
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	t.clean(root)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render: %w", err)
		}
	}
	return buf.String(), nil
}

// clean filters the children of parent in document order. Text nodes pass
// through (serialization escapes them), dangerous elements are removed with
// their subtree, disallowed elements are unwrapped, and allowed elements get
// attribute filtering before recursion.
func (t *TreeStrategy) clean(parent *html.Node) {
	c := parent.FirstChild
	for c != nil {
		next := c.NextSibling
		switch c.Type {
		case html.ElementNode:
			tag := strings.ToLower(c.Data)
			switch {
			case t.policy.DangerousTags[tag]:
				parent.RemoveChild(c)
			case !t.policy.AllowedTags[tag]:
				// Unwrap: the spliced children take the element's place and
				// are re-examined at this level.
				next = unwrap(parent, c)
			default:
				c.Attr = t.filterAttrs(c.Attr)
				t.clean(c)
			}
		case html.CommentNode, html.DoctypeNode:
			parent.RemoveChild(c)
		}
		c = next
	}
}

// unwrap splices c's children into parent in c's place, preserving their
// relative order, and removes c. It returns the node the caller should
// continue from: the first spliced child, or c's old successor when c was
// empty.
func unwrap(parent, c *html.Node) *html.Node {
	next := c.NextSibling
	first := c.FirstChild
	for gc := c.FirstChild; gc != nil; {
		n := gc.NextSibling
		c.RemoveChild(gc)
		parent.InsertBefore(gc, c)
		gc = n
	}
	parent.RemoveChild(c)
	if first != nil {
		return first
	}
	return next
}

func (t *TreeStrategy) filterAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if !t.policy.AllowedAttributes[key] {
			continue
		}
		switch key {
		case "style":
			clean := t.policy.SanitizeStyle(a.Val)
			if clean == "" {
				continue
			}
			a.Val = clean
		case "href":
			// Removal only: an unsafe href is never rewritten.
			if !t.policy.IsSafeURL(a.Val) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
