package session

import "github.com/pawararyan169/job-portal/internal/domain"

// Route names the screen the client should render first after a cold
// start.
type Route string

const (
	RouteLogin              Route = "login"
	RouteRecruiterDashboard Route = "recruiter_dashboard"
	RouteProfileSetup       Route = "profile_setup"
	RouteHome               Route = "home"
)

// Decision is the outcome of the cold-start routing table. For the
// profile-setup route the identity fields are carried along so the
// setup screen does not have to re-read the cache.
type Decision struct {
	Route  Route
	UserID string
	Email  string
	Token  string
}

// Decide maps a cached identity to the initial route. The table is
// evaluated top to bottom and the first match wins:
//
//  1. no identity            -> login
//  2. recruiter              -> recruiter dashboard
//  3. profile incomplete     -> profile setup
//  4. otherwise              -> home feed
//
// It is a pure function of its input so every cold start with the same
// cached state lands on the same screen.
func Decide(id *Identity) Decision {
	if id == nil {
		return Decision{Route: RouteLogin}
	}
	if id.Role == string(domain.RoleRecruiter) {
		return Decision{Route: RouteRecruiterDashboard, UserID: id.UserID, Email: id.Email, Token: id.Token}
	}
	if !id.ProfileComplete {
		return Decision{Route: RouteProfileSetup, UserID: id.UserID, Email: id.Email, Token: id.Token}
	}
	return Decision{Route: RouteHome, UserID: id.UserID, Email: id.Email, Token: id.Token}
}

// Bootstrap performs the cold-start cache read off the caller's
// goroutine and delivers exactly one Decision on the returned channel.
// The caller renders its loading state until the channel fires; it
// never blocks on disk IO directly. A read error routes to login, the
// same as an empty cache, because there is nothing actionable the
// launch screen can do with it.
func Bootstrap(cache *Cache) <-chan Decision {
	out := make(chan Decision, 1)
	go func() {
		defer close(out)
		id, err := cache.Load()
		if err != nil {
			out <- Decision{Route: RouteLogin}
			return
		}
		out <- Decide(id)
	}()
	return out
}
