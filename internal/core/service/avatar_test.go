package service

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestGravatarURL_Deterministic(t *testing.T) {
	a := gravatarURL("a@x.com")
	b := gravatarURL("  A@X.COM ")
	if a != b {
		t.Fatalf("normalisation broken: %s vs %s", a, b)
	}
	// md5("a@x.com") is stable; the URL embeds it with the fixed parameters.
	want := "//www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?s=200&r=pg&d=mm"
	if a != want {
		t.Fatalf("unexpected url: %s", a)
	}
}
