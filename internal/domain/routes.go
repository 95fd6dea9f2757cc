package domain

import "strings"

// Pages the portal can render. The UI maps these to views; the gateway only
// decides which one a request resolves to.
const (
	PageLanding           = "landing"
	PageLogin             = "login"
	PageRegister          = "register"
	PageVerify            = "verify"
	PageDashboard         = "dashboard"
	PageHealthInformation = "health-information"
	PageHealthInfoDetail  = "health-info-detail"
	PageHealthTopics      = "health-topics"
	PageHealthTopicDetail = "health-topic-detail"
	PageServices          = "services"
	PageContact           = "contact"
)

const (
	PathLanding   = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathVerify    = "/verify"
	PathDashboard = "/dashboard"
)

// publicPages: entry routes reachable without a session.
var publicPages = map[string]string{
	PathLanding:  PageLanding,
	PathLogin:    PageLogin,
	PathRegister: PageRegister,
	PathVerify:   PageVerify,
}

// protectedPatterns: every other known route requires a session. Patterns use
// a single {id} placeholder, matched per segment.
var protectedPatterns = map[string]string{
	PathDashboard:         PageDashboard,
	"/home":               PageHealthInformation,
	"/health-info/{id}":   PageHealthInfoDetail,
	"/health-topics":      PageHealthTopics,
	"/health-topics/{id}": PageHealthTopicDetail,
	"/services":           PageServices,
	"/contact":            PageContact,
}

type DecisionAction string

const (
	ActionRender   DecisionAction = "render"
	ActionRedirect DecisionAction = "redirect"
)

// Decision is the guard's verdict for one (session, path) pair.
type Decision struct {
	Action   DecisionAction
	Page     string // set when Action == render
	Location string // set when Action == redirect
}

func render(page string) Decision {
	return Decision{Action: ActionRender, Page: page}
}

func redirectTo(path string) Decision {
	return Decision{Action: ActionRedirect, Location: path}
}

// Guard decides whether a path renders or redirects given the session state.
// Rules, in precedence order:
//  1. public path + authenticated  -> redirect to dashboard
//  2. public path + anonymous      -> render the public page
//  3. protected path + anonymous   -> redirect to login
//  4. protected path + authenticated -> render the page
//  5. unknown path -> redirect to landing
func Guard(authenticated bool, path string) Decision {
	if page, ok := publicPages[path]; ok {
		if authenticated {
			return redirectTo(PathDashboard)
		}
		return render(page)
	}

	if page, ok := matchProtected(path); ok {
		if !authenticated {
			return redirectTo(PathLogin)
		}
		return render(page)
	}

	return redirectTo(PathLanding)
}

// ChromeVisible reports whether the header/footer chrome shows: only on
// authenticated non-public pages. Derived, never stored.
func ChromeVisible(authenticated bool, path string) bool {
	_, public := publicPages[path]
	return authenticated && !public
}

func matchProtected(path string) (string, bool) {
	for pattern, page := range protectedPatterns {
		if matchPattern(pattern, path) {
			return page, true
		}
	}
	return "", false
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if ps[i] == "{id}" {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
