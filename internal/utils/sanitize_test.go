package utils_test

import (
	"testing"

	"github.com/quotery/quotes-api/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Run("Strips markup", func(t *testing.T) {
		assert.Equal(t, "hello", utils.SanitizeText("<script>alert(1)</script><b>hello</b>"))
	})

	t.Run("Keeps punctuation as written", func(t *testing.T) {
		assert.Equal(t, "don't judge & don't preach", utils.SanitizeText("don't judge & don't preach"))
	})

	t.Run("Plain text is untouched", func(t *testing.T) {
		assert.Equal(t, "a plain sentence", utils.SanitizeText("a plain sentence"))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello world", utils.Capitalize("hello world"))
	assert.Equal(t, "Hello", utils.Capitalize("Hello"))
	assert.Equal(t, "", utils.Capitalize(""))
	assert.Equal(t, "Ñoño", utils.Capitalize("ñoño"))
	assert.Equal(t, "1984", utils.Capitalize("1984"))
}
