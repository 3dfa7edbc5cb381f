// Package markdown turns model output into a structured block sequence.
//
// The accepted dialect is deliberately small: "* "/"- " unordered items,
// "<digits>. " ordered items, "# "/"## "/"### " headings, and **bold**
// spans. Everything else is a paragraph. The transform is line-based,
// preserves input order, is idempotent on plain text, and never fails on
// malformed markers.
package markdown

import (
	"regexp"
	"strings"
)

type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
)

// Span is a run of text, optionally bold.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Block is one rendered element. Heading and paragraph blocks carry
// Spans; list blocks carry one span slice per item.
type Block struct {
	Type    BlockType `json:"type"`
	Level   int       `json:"level,omitempty"`
	Ordered bool      `json:"ordered,omitempty"`
	Spans   []Span    `json:"spans,omitempty"`
	Items   [][]Span  `json:"items,omitempty"`
}

var (
	orderedItemRe = regexp.MustCompile(`^\d+\.\s`)
	boldRe        = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// Render maps raw text to its block sequence.
func Render(text string) []Block {
	var blocks []Block

	var listItems [][]Span
	listOrdered := false
	inList := false

	flushList := func() {
		if !inList {
			return
		}
		blocks = append(blocks, Block{Type: BlockList, Ordered: listOrdered, Items: listItems})
		listItems = nil
		inList = false
	}

	for _, line := range strings.Split(text, "\n") {
		isUnordered := strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
		isOrdered := !isUnordered && orderedItemRe.MatchString(line)

		// A list closes when the item type switches or a non-list line
		// arrives.
		if inList && ((isUnordered && listOrdered) || (isOrdered && !listOrdered) || (!isUnordered && !isOrdered)) {
			flushList()
		}

		switch {
		case isUnordered:
			if !inList {
				inList = true
				listOrdered = false
			}
			listItems = append(listItems, parseInline(line[2:]))
		case isOrdered:
			if !inList {
				inList = true
				listOrdered = true
			}
			listItems = append(listItems, parseInline(orderedItemRe.ReplaceAllString(line, "")))
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Type: BlockHeading, Level: 4, Spans: parseInline(line[4:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Type: BlockHeading, Level: 3, Spans: parseInline(line[3:])})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Type: BlockHeading, Level: 2, Spans: parseInline(line[2:])})
		case strings.TrimSpace(line) != "":
			blocks = append(blocks, Block{Type: BlockParagraph, Spans: parseInline(line)})
		}
	}
	flushList()

	return blocks
}

// parseInline splits a line into plain and bold spans. Unmatched **
// markers are left as literal text.
func parseInline(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldRe.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: line[last:m[0]]})
		}
		spans = append(spans, Span{Text: line[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(line) {
		spans = append(spans, Span{Text: line[last:]})
	}
	return spans
}
