package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PreviewText(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		payload string
		want    string
	}{
		{"text carries its body", KindText, "hello there", "hello there"},
		{"photo hides its URL", KindPhoto, "file:///blobs/p.png", "[photo]"},
		{"video hides its URL", KindVideo, "file:///blobs/v.mp4", "[video]"},
		{"unknown kind previews empty", Kind("sticker"), "whatever", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PreviewText(tt.kind, tt.payload))
		})
	}
}
