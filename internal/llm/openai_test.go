package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	sdkDefault := openai.DefaultConfig("k").BaseURL

	assert.Equal(t, sdkDefault, resolveBaseURL("", sdkDefault), "empty override keeps the SDK default")
	assert.Equal(t, "https://llm.example.com/v1", resolveBaseURL("https://llm.example.com/v1/", sdkDefault))
}
