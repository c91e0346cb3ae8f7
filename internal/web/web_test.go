package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandingPage(t *testing.T) {
	page := string(LandingPage())

	assert.Contains(t, page, "<title>FitTracker Project Download</title>")
	assert.Contains(t, page, `href="/download"`)
	assert.Contains(t, page, "tar -xzf fitness-tracker-complete.tar.gz")
}
