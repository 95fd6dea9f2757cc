package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_PublicPaths(t *testing.T) {
	t.Run("authenticated user is bounced to dashboard", func(t *testing.T) {
		for _, path := range []string{"/", "/login", "/register", "/verify"} {
			d := Guard(true, path)
			assert.Equal(t, ActionRedirect, d.Action, path)
			assert.Equal(t, PathDashboard, d.Location, path)
		}
	})

	t.Run("anonymous user renders the public page", func(t *testing.T) {
		cases := map[string]string{
			"/":         PageLanding,
			"/login":    PageLogin,
			"/register": PageRegister,
			"/verify":   PageVerify,
		}
		for path, page := range cases {
			d := Guard(false, path)
			assert.Equal(t, ActionRender, d.Action, path)
			assert.Equal(t, page, d.Page, path)
		}
	})
}

func TestGuard_ProtectedPaths(t *testing.T) {
	protected := map[string]string{
		"/dashboard":        PageDashboard,
		"/home":             PageHealthInformation,
		"/health-info/42":   PageHealthInfoDetail,
		"/health-topics":    PageHealthTopics,
		"/health-topics/3":  PageHealthTopicDetail,
		"/services":         PageServices,
		"/contact":          PageContact,
	}

	t.Run("anonymous user is sent to login", func(t *testing.T) {
		for path := range protected {
			d := Guard(false, path)
			assert.Equal(t, ActionRedirect, d.Action, path)
			assert.Equal(t, PathLogin, d.Location, path)
		}
	})

	t.Run("authenticated user renders the page", func(t *testing.T) {
		for path, page := range protected {
			d := Guard(true, path)
			assert.Equal(t, ActionRender, d.Action, path)
			assert.Equal(t, page, d.Page, path)
		}
	})
}

func TestGuard_UnknownPathRedirectsToLanding(t *testing.T) {
	for _, auth := range []bool{true, false} {
		for _, path := range []string{"/nope", "/health-info", "/health-info/1/extra", "/dashboard/sub"} {
			d := Guard(auth, path)
			assert.Equal(t, ActionRedirect, d.Action, path)
			assert.Equal(t, PathLanding, d.Location, path)
		}
	}
}

func TestChromeVisible(t *testing.T) {
	assert.True(t, ChromeVisible(true, "/dashboard"))
	assert.False(t, ChromeVisible(true, "/login"))
	assert.False(t, ChromeVisible(false, "/dashboard"))
	assert.False(t, ChromeVisible(false, "/"))
}
