package blob

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "messenger-lab/errors"
)

// A 1x1 transparent PNG, enough for MIME sniffing.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func Test_Upload_Image(t *testing.T) {
	req := require.New(t)
	store := NewDiskBlobStore(t.TempDir(), slog.Default())

	url, err := store.Upload(pngPixel, "message-1")
	req.NoError(err)
	req.True(strings.HasPrefix(url, "file://"))
	req.True(strings.HasSuffix(url, "message-1.png"))

	stored, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	req.NoError(err)
	req.Equal(pngPixel, stored)
}

func Test_Upload_Rejects_Non_Media(t *testing.T) {
	req := require.New(t)
	store := NewDiskBlobStore(t.TempDir(), slog.Default())

	_, err := store.Upload([]byte("just some text"), "message-2")
	req.ErrorIs(err, errs.ErrUnsupportedMedia)
}

func Test_Upload_Same_Key_Overwrites(t *testing.T) {
	req := require.New(t)
	store := NewDiskBlobStore(t.TempDir(), slog.Default())

	first, err := store.Upload(pngPixel, "message-3")
	req.NoError(err)
	second, err := store.Upload(pngPixel, "message-3")
	req.NoError(err)
	req.Equal(first, second)
}
