package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsisLong(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := TruncateWithEllipsis(long, 100)

	assert.Equal(t, strings.Repeat("a", 100)+"...", got)
}

func TestTruncateWithEllipsisShortPassesThrough(t *testing.T) {
	assert.Equal(t, "short text", TruncateWithEllipsis("short text", 100))
}

func TestTruncateWithEllipsisExactBoundary(t *testing.T) {
	exact := strings.Repeat("b", 100)
	assert.Equal(t, exact, TruncateWithEllipsis(exact, 100))
}

func TestFormatPostDate(t *testing.T) {
	posted := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Jan 05, 2024", FormatPostDate(posted))
}
