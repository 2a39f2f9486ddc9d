package tui

// Route identifies one of the client's screens.
type Route int

const (
	RouteDashboard Route = iota
	RouteProfile
	RouteLogin
	RouteSignUp
)

func (r Route) String() string {
	switch r {
	case RouteDashboard:
		return "dashboard"
	case RouteProfile:
		return "profile"
	case RouteLogin:
		return "login"
	case RouteSignUp:
		return "signup"
	default:
		return "unknown"
	}
}

// ResolveRoute applies the access guard to a navigation target: protected
// screens fall back to Login for unauthenticated users, auth screens fall
// back to Dashboard for authenticated ones. Every navigation goes through
// this, so a stale target can never render the wrong screen.
func ResolveRoute(target Route, authenticated bool) Route {
	switch target {
	case RouteDashboard, RouteProfile:
		if !authenticated {
			return RouteLogin
		}
	case RouteLogin, RouteSignUp:
		if authenticated {
			return RouteDashboard
		}
	}
	return target
}
