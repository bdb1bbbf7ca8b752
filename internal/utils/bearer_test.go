package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBearer(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "adds prefix", token: "abc", want: "Bearer abc"},
		{name: "keeps existing prefix", token: "Bearer abc", want: "Bearer abc"},
		{name: "lowercase prefix is not recognised", token: "bearer abc", want: "Bearer bearer abc"},
		{name: "empty", token: "", want: ""},
		{name: "blank", token: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBearer(tt.token))
		})
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "Bearer pat-na1-...", MaskToken("Bearer pat-na1-0123456789"))
	assert.Equal(t, "***", MaskToken("short"))
	assert.Equal(t, "***", MaskToken(""))
	assert.NotContains(t, MaskToken("Bearer pat-na1-supersecretvalue"), "supersecret")
}
