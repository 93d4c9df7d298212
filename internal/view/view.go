package view

import "sync"

// View enumerates the application screens.
type View string

const (
	SignIn   View = "SIGN_IN"
	SignUp   View = "SIGN_UP"
	Home     View = "HOME"
	Create   View = "CREATE"
	History  View = "HISTORY"
	Trash    View = "TRASH"
	Export   View = "EXPORT"
	Settings View = "SETTINGS"
	Stats    View = "STATS"
)

// Valid reports whether v names a known view.
func Valid(v View) bool {
	switch v {
	case SignIn, SignUp, Home, Create, History, Trash, Export, Settings, Stats:
		return true
	}
	return false
}

// Router holds the active screen. Transitions are unguarded except that the
// auth views are unreachable while authenticated (redirect to HOME) and every
// other view is unreachable while unauthenticated (redirect to SIGN_IN).
type Router struct {
	mu      sync.Mutex
	current View
	authed  func() bool
}

func NewRouter(authed func() bool) *Router {
	r := &Router{current: SignIn, authed: authed}
	if authed() {
		r.current = Home
	}
	return r
}

// Navigate moves to v, applying the auth guards, and returns the resulting
// view.
func (r *Router) Navigate(v View) View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.authed() {
		if v == SignIn || v == SignUp {
			v = Home
		}
	} else if v != SignIn && v != SignUp {
		v = SignIn
	}
	r.current = v
	return v
}

// Current re-applies the guards before reporting, so a sign-out observed
// between navigations still lands on SIGN_IN.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.authed() && r.current != SignUp {
		r.current = SignIn
	} else if r.authed() && (r.current == SignIn || r.current == SignUp) {
		r.current = Home
	}
	return r.current
}

// Reset returns to the sign-in screen.
func (r *Router) Reset() {
	r.mu.Lock()
	r.current = SignIn
	r.mu.Unlock()
}
