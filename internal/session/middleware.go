package session

import "net/http"

// Guard lets a request through only when the session carries a token. Otherwise the browser is
// redirected to loginPath, so the guarded URL never lands in history.
func Guard(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !FromContext(r.Context()).Authenticated() {
				http.Redirect(w, r, loginPath, RedirectStatus(r))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated sends vendors who are already signed in to target.
func RedirectAuthenticated(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if FromContext(r.Context()).Authenticated() {
				http.Redirect(w, r, target, RedirectStatus(r))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RedirectStatus is 302 for safe methods and 303 otherwise, so a redirected form post turns into a GET.
func RedirectStatus(r *http.Request) int {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}
