package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Normalize(t *testing.T) {
	req := require.New(t)

	req.Equal("alice-example-com", Normalize("alice@example.com"))
	req.Equal("first-last-mail-org", Normalize("first.last@mail.org"))
	req.Equal("alice-example-com", Normalize("  alice@example.com  "))
}

func Test_Normalize_Is_Idempotent(t *testing.T) {
	req := require.New(t)

	once := Normalize("a.b.c@d.e")
	req.Equal(once, Normalize(once))
}

func Test_Normalize_Keeps_Distinct_Emails_Distinct(t *testing.T) {
	req := require.New(t)

	req.NotEqual(Normalize("alice@example.com"), Normalize("bob@example.com"))
}
