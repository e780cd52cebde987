package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(p *Prompt, s string) {
	for _, r := range s {
		p.Insert(r)
	}
}

func TestEditing(t *testing.T) {
	p := New()
	typeLine(p, "wq")
	p.Left()
	p.Insert('x')
	assert.Equal(t, "wxq", p.String())
	assert.Equal(t, 2, p.Cursor())

	require.True(t, p.Backspace())
	assert.Equal(t, "wq", p.String())

	p.Left()
	p.Left()
	assert.True(t, p.Backspace(), "non-empty line at column 0")
	assert.Equal(t, "wq", p.String())

	p.Right()
	p.Right()
	p.Right()
	assert.Equal(t, 2, p.Cursor())
	p.Backspace()
	p.Backspace()
	assert.False(t, p.Backspace())
}

func TestParse(t *testing.T) {
	p := New()
	typeLine(p, "  e   notes.txt ")

	assert.Equal(t, []string{"e", "notes.txt"}, p.Parse())
	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, []string{"  e   notes.txt "}, p.History())

	typeLine(p, "   ")
	assert.Nil(t, p.Parse())
	assert.Len(t, p.History(), 1)
}

func TestHistoryNoConsecutiveDuplicates(t *testing.T) {
	p := New()
	for _, line := range []string{"w", "w", "q", "w"} {
		typeLine(p, line)
		p.Parse()
	}
	assert.Equal(t, []string{"w", "q", "w"}, p.History())
}

func TestHistoryNavigation(t *testing.T) {
	p := New()
	for _, line := range []string{"e a.txt", "w"} {
		typeLine(p, line)
		p.Parse()
	}
	typeLine(p, "dra")

	require.True(t, p.Prev())
	assert.Equal(t, "w", p.String())
	assert.Equal(t, 1, p.Cursor())
	require.True(t, p.Prev())
	assert.Equal(t, "e a.txt", p.String())
	assert.False(t, p.Prev())

	require.True(t, p.Next())
	assert.Equal(t, "w", p.String())
	require.True(t, p.Next())
	assert.Equal(t, "dra", p.String(), "draft restored")
	assert.False(t, p.Next())
}

func TestResetStopsBrowsing(t *testing.T) {
	p := New()
	typeLine(p, "q")
	p.Parse()
	p.Prev()
	p.Reset()

	assert.Equal(t, "", p.String())
	assert.False(t, p.Next())
	assert.True(t, p.Prev())
}
