package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/poacpm/poac/internal/ui/output"
	"github.com/stretchr/testify/assert"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer

	out := output.New(&buf)
	_, err := out.WriteString(out.String("a is deleted").Foreground(termenv.RGBColor("#22A06B")).String())

	assert.NoError(t, err)
	assert.Equal(t, "a is deleted", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
