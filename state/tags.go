package state

import (
	"iter"
	"slices"

	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
)

// Tags like <br> that the HTML grammar closes implicitly and that never form
// an editable pair.
var voidTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

func IsVoidTag(name string) bool {
	return slices.Contains(voidTags, name)
}

// ClosestTagName returns node itself when it is a tag name, nil otherwise.
// Erroneous end tag names do not count, they have no pair by definition.
func ClosestTagName(node *Node) *Node {
	if IsTagName(node) {
		return node
	}

	return nil
}

// TagElement returns the element owning a tag name node.
func TagElement(name *Node) *Node {
	tag := name.Parent()

	if !IsStartTag(tag) && !IsEndTag(tag) && !IsSelfClosingTag(tag) {
		return nil
	}

	return tag.Parent()
}

// TagPair returns the opening and closing tag name nodes of the element owning
// name. Either result is nil when the element has no such tag, so a
// self-closing or unclosed element never forms a pair.
func TagPair(name *Node) (start *Node, end *Node) {
	element := TagElement(name)

	if element == nil {
		return
	}

	start = GetChildByType(GetChildByType(element, "start_tag"), "tag_name")
	end = GetChildByType(GetChildByType(element, "end_tag"), "tag_name")

	return
}

func ElementStartTagName(element *Node) *Node {
	name := GetChildByType(GetChildByType(element, "start_tag"), "tag_name")

	if name != nil {
		return name
	}

	return GetChildByType(GetChildByType(element, "self_closing_tag"), "tag_name")
}

func ElementEndTagName(element *Node) *Node {
	return GetChildByType(GetChildByType(element, "end_tag"), "tag_name")
}

func ElementErroneousEndTagName(element *Node) *Node {
	return GetChildByType(GetChildByType(element, "erroneous_end_tag"), "erroneous_end_tag_name")
}

func ElementsIter(root *Node) iter.Seq[*Node] {
	q, err := CreateQuery(`(element) @element`)

	if err != nil {
		return func(yield func(*Node) bool) {}
	}

	return func(yield func(*Node) bool) {
		defer q.Close()

		for _, node := range QueryIter(q, root) {
			if !yield(node) {
				return
			}
		}
	}
}

func ErroneousEndTagNamesIter(root *Node) iter.Seq[*Node] {
	q, err := CreateQuery(`(erroneous_end_tag_name) @name`)

	if err != nil {
		return func(yield func(*Node) bool) {}
	}

	return func(yield func(*Node) bool) {
		defer q.Close()

		for _, node := range QueryIter(q, root) {
			if !yield(node) {
				return
			}
		}
	}
}

// UnclosedElementsIter yields elements with an opening tag but no closing tag.
// Void and self-closing elements are skipped.
func UnclosedElementsIter(doc *Doc) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for element := range ElementsIter(doc.Tree.RootNode()) {
			start := GetChildByType(element, "start_tag")

			if start == nil {
				continue
			}

			if ElementEndTagName(element) != nil || ElementErroneousEndTagName(element) != nil {
				continue
			}

			name := GetChildByType(start, "tag_name")

			if name == nil || IsVoidTag(ToString(name, doc)) {
				continue
			}

			if !yield(element) {
				return
			}
		}
	}
}
