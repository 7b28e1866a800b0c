package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	html, err := RenderHTML("welcome", map[string]any{
		"Name":    "Ada",
		"Email":   "ada@example.com",
		"AppName": "registration-service",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "ada@example.com")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := RenderHTML("nope", nil)
	assert.Error(t, err)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Welcome aboard", Subject("welcome"))
	assert.Equal(t, "Notification", Subject("whatever"))
}
