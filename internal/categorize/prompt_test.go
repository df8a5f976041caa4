package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	assert.Equal(t, "swiggy order dinner", Shorten("Payment for the Swiggy order dinner"))
	assert.Equal(t, "one two three four five", Shorten("one two three four five six seven"))
	assert.Equal(t, "cab", Shorten("a cab"))
	assert.Equal(t, "for the", Shorten(" for the "))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt([]string{"Food", Other}, []string{"Swiggy order", "xyz unknown merchant 42"})

	assert.Contains(t, prompt, "Categories: Food, Other")
	assert.Contains(t, prompt, "0: swiggy order\n")
	assert.Contains(t, prompt, "1: xyz unknown merchant 42\n")
	assert.Contains(t, prompt, "index:category")
}
