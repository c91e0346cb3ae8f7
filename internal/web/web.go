package web

import (
	_ "embed"
)

//go:embed html/index.html
var landingPage []byte

// LandingPage returns the fixed HTML document served on every path except /download.
// The returned slice is shared; callers must not modify it.
func LandingPage() []byte {
	return landingPage
}
