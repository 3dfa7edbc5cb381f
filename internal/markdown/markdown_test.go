package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthquest/backend/internal/markdown"
)

func TestRender_PlainTextIsParagraphPerLine(t *testing.T) {
	blocks := markdown.Render("first line\n\nsecond line")

	require.Len(t, blocks, 2)
	assert.Equal(t, markdown.BlockParagraph, blocks[0].Type)
	assert.Equal(t, []markdown.Span{{Text: "first line"}}, blocks[0].Spans)
	assert.Equal(t, []markdown.Span{{Text: "second line"}}, blocks[1].Spans)
}

func TestRender_BoldSpan(t *testing.T) {
	blocks := markdown.Render("**bold**")

	require.Len(t, blocks, 1)
	require.Equal(t, markdown.BlockParagraph, blocks[0].Type)
	assert.Equal(t, []markdown.Span{{Text: "bold", Bold: true}}, blocks[0].Spans)
}

func TestRender_BoldInsideText(t *testing.T) {
	blocks := markdown.Render("eat **protein** daily")

	require.Len(t, blocks, 1)
	assert.Equal(t, []markdown.Span{
		{Text: "eat "},
		{Text: "protein", Bold: true},
		{Text: " daily"},
	}, blocks[0].Spans)
}

func TestRender_UnmatchedBoldIsLiteral(t *testing.T) {
	blocks := markdown.Render("a ** lonely marker")

	require.Len(t, blocks, 1)
	assert.Equal(t, []markdown.Span{{Text: "a ** lonely marker"}}, blocks[0].Spans)
}

func TestRender_ConsecutiveUnorderedItemsMerge(t *testing.T) {
	blocks := markdown.Render("* a\n* b\n* c")

	require.Len(t, blocks, 1)
	require.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.False(t, blocks[0].Ordered)
	require.Len(t, blocks[0].Items, 3)
	assert.Equal(t, []markdown.Span{{Text: "a"}}, blocks[0].Items[0])
	assert.Equal(t, []markdown.Span{{Text: "b"}}, blocks[0].Items[1])
	assert.Equal(t, []markdown.Span{{Text: "c"}}, blocks[0].Items[2])
}

func TestRender_DashItemsAreUnordered(t *testing.T) {
	blocks := markdown.Render("- a\n- b")

	require.Len(t, blocks, 1)
	assert.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.False(t, blocks[0].Ordered)
	assert.Len(t, blocks[0].Items, 2)
}

func TestRender_OrderedList(t *testing.T) {
	blocks := markdown.Render("1. first\n2. second\n10. tenth")

	require.Len(t, blocks, 1)
	require.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.True(t, blocks[0].Ordered)
	require.Len(t, blocks[0].Items, 3)
	assert.Equal(t, []markdown.Span{{Text: "tenth"}}, blocks[0].Items[2])
}

func TestRender_ListTypeSwitchClosesList(t *testing.T) {
	blocks := markdown.Render("* a\n1. b")

	require.Len(t, blocks, 2)
	assert.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.False(t, blocks[0].Ordered)
	assert.Equal(t, markdown.BlockList, blocks[1].Type)
	assert.True(t, blocks[1].Ordered)
}

func TestRender_NonListLineClosesList(t *testing.T) {
	blocks := markdown.Render("* a\nplain\n* b")

	require.Len(t, blocks, 3)
	assert.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.Equal(t, markdown.BlockParagraph, blocks[1].Type)
	assert.Equal(t, markdown.BlockList, blocks[2].Type)
}

func TestRender_Headings(t *testing.T) {
	blocks := markdown.Render("# Title\n## Section\n### Detail")

	require.Len(t, blocks, 3)
	assert.Equal(t, markdown.BlockHeading, blocks[0].Type)
	assert.Equal(t, 2, blocks[0].Level)
	assert.Equal(t, []markdown.Span{{Text: "Title"}}, blocks[0].Spans)
	assert.Equal(t, 3, blocks[1].Level)
	assert.Equal(t, []markdown.Span{{Text: "Section"}}, blocks[1].Spans)
	assert.Equal(t, 4, blocks[2].Level)
	assert.Equal(t, []markdown.Span{{Text: "Detail"}}, blocks[2].Spans)
}

func TestRender_HeadingWithBold(t *testing.T) {
	blocks := markdown.Render("## The **key** point")

	require.Len(t, blocks, 1)
	assert.Equal(t, []markdown.Span{
		{Text: "The "},
		{Text: "key", Bold: true},
		{Text: " point"},
	}, blocks[0].Spans)
}

func TestRender_NumberedItemIsNotHeading(t *testing.T) {
	// List markers take precedence over every other rule.
	blocks := markdown.Render("1. # not a heading")

	require.Len(t, blocks, 1)
	assert.Equal(t, markdown.BlockList, blocks[0].Type)
	assert.Equal(t, []markdown.Span{{Text: "# not a heading"}}, blocks[0].Items[0])
}

func TestRender_BlankLinesProduceNothing(t *testing.T) {
	assert.Empty(t, markdown.Render(""))
	assert.Empty(t, markdown.Render("\n\n   \n"))
}

func TestRender_MixedDocumentPreservesOrder(t *testing.T) {
	text := "# Overview\nSome **important** context.\n\n* point one\n* point two\n\n1. step one\n2. step two\n### Fine print"
	blocks := markdown.Render(text)

	require.Len(t, blocks, 5)
	assert.Equal(t, markdown.BlockHeading, blocks[0].Type)
	assert.Equal(t, markdown.BlockParagraph, blocks[1].Type)
	assert.Equal(t, markdown.BlockList, blocks[2].Type)
	assert.False(t, blocks[2].Ordered)
	assert.Equal(t, markdown.BlockList, blocks[3].Type)
	assert.True(t, blocks[3].Ordered)
	assert.Equal(t, markdown.BlockHeading, blocks[4].Type)
	assert.Equal(t, 4, blocks[4].Level)
}

func TestRender_TrailingListIsFlushed(t *testing.T) {
	blocks := markdown.Render("intro\n* last\n* items")

	require.Len(t, blocks, 2)
	assert.Equal(t, markdown.BlockList, blocks[1].Type)
	assert.Len(t, blocks[1].Items, 2)
}
