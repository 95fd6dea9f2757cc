package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/logger"
	"github.com/carelink/portal-gateway/internal/security"
	"github.com/carelink/portal-gateway/internal/transport/http/middleware"
)

type PagesHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type RegisterHandler interface {
	State(w http.ResponseWriter, r *http.Request)
	Step(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Resend(w http.ResponseWriter, r *http.Request)
}

type CareHandler interface {
	ListGoals(w http.ResponseWriter, r *http.Request)
	GetGoal(w http.ResponseWriter, r *http.Request)
	CreateGoal(w http.ResponseWriter, r *http.Request)
	UpdateGoal(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)

	ListReminders(w http.ResponseWriter, r *http.Request)
	GetReminder(w http.ResponseWriter, r *http.Request)
	CreateReminder(w http.ResponseWriter, r *http.Request)
	UpdateReminder(w http.ResponseWriter, r *http.Request)
	DeleteReminder(w http.ResponseWriter, r *http.Request)

	Profile(w http.ResponseWriter, r *http.Request)
}

type ContentHandler interface {
	ListArticles(w http.ResponseWriter, r *http.Request)
	GetArticle(w http.ResponseWriter, r *http.Request)
	ListTopics(w http.ResponseWriter, r *http.Request)
	GetTopic(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Pages    PagesHandler
	Auth     AuthHandler
	Register RegisterHandler
	Care     CareHandler
	Content  ContentHandler
	Health   HealthHandler

	Cookies *security.CookieCodec
}

func New(deps Deps) (http.Handler, error) {
	if deps.Pages == nil {
		return nil, fmt.Errorf("nil Pages handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Register == nil {
		return nil, fmt.Errorf("nil Register handler")
	}
	if deps.Care == nil {
		return nil, fmt.Errorf("nil Care handler")
	}
	if deps.Content == nil {
		return nil, fmt.Errorf("nil Content handler")
	}
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Cookies == nil {
		return nil, fmt.Errorf("nil cookie codec")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Session(deps.Cookies))

	r.Get("/healthz", deps.Health.Healthz)

	// Page routes: the guard decides render vs redirect per session state.
	for _, path := range []string{
		domain.PathLanding,
		domain.PathLogin,
		domain.PathRegister,
		domain.PathVerify,
		domain.PathDashboard,
		"/home",
		"/health-info/{id}",
		"/health-topics",
		"/health-topics/{id}",
		"/services",
		"/contact",
	} {
		r.Get(path, deps.Pages.Resolve)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", deps.Auth.Session)
			r.Post("/login", deps.Auth.Login)
			r.Post("/logout", deps.Auth.Logout)
		})

		r.Route("/register", func(r chi.Router) {
			r.Get("/", deps.Register.State)
			r.Post("/step", deps.Register.Step)
			r.Post("/back", deps.Register.Back)
			r.Post("/submit", deps.Register.Submit)
		})

		r.Post("/verify", deps.Register.Verify)
		r.Post("/verify/resend", deps.Register.Resend)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", deps.Care.ListGoals)
			r.Post("/", deps.Care.CreateGoal)
			r.Get("/{id}", deps.Care.GetGoal)
			r.Put("/{id}", deps.Care.UpdateGoal)
			r.Delete("/{id}", deps.Care.DeleteGoal)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", deps.Care.ListReminders)
			r.Post("/", deps.Care.CreateReminder)
			r.Get("/{id}", deps.Care.GetReminder)
			r.Put("/{id}", deps.Care.UpdateReminder)
			r.Delete("/{id}", deps.Care.DeleteReminder)
		})

		r.Get("/profile", deps.Care.Profile)

		r.Get("/articles", deps.Content.ListArticles)
		r.Get("/articles/{id}", deps.Content.GetArticle)
		r.Get("/topics", deps.Content.ListTopics)
		r.Get("/topics/{id}", deps.Content.GetTopic)
	})

	return r, nil
}
