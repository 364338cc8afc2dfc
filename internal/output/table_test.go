package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_AlignsAndColorsStatuses(t *testing.T) {
	tree := RenderFileTree([]FileEntry{
		{Path: "server/index.js", Status: StatusCreated},
		{Path: "client/app.js", Status: StatusSkipped},
	}, 24)

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "server/index.js"))
	assert.Contains(t, lines[0], StatusStyle(StatusCreated).Render(StatusCreated))
	assert.Contains(t, lines[1], StatusStyle(StatusSkipped).Render(StatusSkipped))

	// Annotations start at the alignment column.
	assert.Equal(t, strings.Index(lines[0], StatusStyle(StatusCreated).Render(StatusCreated)), 24)
}

func TestRenderFileTree_LongPathKeepsOneSpace(t *testing.T) {
	tree := RenderFileTree([]FileEntry{
		{Path: "a/very/long/path/that/exceeds/the/column.js", Status: StatusCreated},
	}, 8)

	assert.Contains(t, tree, "column.js "+StatusStyle(StatusCreated).Render(StatusCreated))
}

func TestStatusStyle_UnknownStatusUnstyled(t *testing.T) {
	assert.Equal(t, "mystery", StatusStyle("mystery").Render("mystery"))
}
