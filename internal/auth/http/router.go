package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"github.com/aussiebroadwan/userauth/pkg/slogx"

	_ "github.com/aussiebroadwan/userauth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	db       Pinger
	sessions SessionStore

	Authenticator Authenticator
	Directory     Directory
	Users         UserCounter
}

// NewRouter builds a router whose every request passes the access policy.
func NewRouter(
	buildVersion string,
	db Pinger,
	sessions SessionStore,
	policy httpx.Policy,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		db:           db,
		sessions:     sessions,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Gate(policy, SessionSubject(sessions)),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLogin()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			User Auth Service API
//	@version		0.1.0
//	@description	Session based login, logout and registration. Responses are wrapped in
//	@description	{status, statusMessage, data}. The session lives in an encrypted cookie.
//
//	@contact.name	AussieBroadWAN Team
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerLogin() {
	h := &LoginHandler{Auth: r.Authenticator, Sessions: r.sessions}

	r.Mux.HandleFunc("POST /login/v1/loginProc", h.HandleProc)
	r.Mux.HandleFunc("POST /login/v1/loginSuccess", h.HandleSuccess)
	r.Mux.HandleFunc("POST /login/v1/loginFail", h.HandleFail)
	r.Mux.HandleFunc("POST /login/v1/loginInfo", h.HandleInfo)
	r.Mux.HandleFunc("POST /user/v1/loginInfo", h.HandleInfo)
}

func (r *Router) registerUsers() {
	h := NewUserHandler(r.Directory, r.sessions)

	r.Mux.HandleFunc("POST /user/v1/userInfo", h.HandleUserInfo)
	r.Mux.HandleFunc("POST /user/v1/logout", h.HandleLogout)
	r.Mux.HandleFunc("POST /user/v1/logoutSuccess", h.HandleLogoutSuccess)
	r.Mux.HandleFunc("POST /user/v1/getUserIdExists", h.HandleIDExists)
	r.Mux.HandleFunc("POST /user/v1/insertUserInfo", h.HandleRegister)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.db, r.Users))
}
