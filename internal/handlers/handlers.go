package handlers

import (
	"net/http"

	_ "github.com/hexenjaeger/clanledger/docs"
	authhandlers "github.com/hexenjaeger/clanledger/internal/handlers/auth"
	backuphandlers "github.com/hexenjaeger/clanledger/internal/handlers/backup"
	eventshandlers "github.com/hexenjaeger/clanledger/internal/handlers/events"
	membershandlers "github.com/hexenjaeger/clanledger/internal/handlers/members"
	payoutshandlers "github.com/hexenjaeger/clanledger/internal/handlers/payouts"
	priceshandlers "github.com/hexenjaeger/clanledger/internal/handlers/prices"
	"github.com/hexenjaeger/clanledger/internal/service"
	"github.com/hexenjaeger/clanledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type MemberHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PriceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	CompleteAll(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MemberHandler MemberHandler
	PriceHandler  PriceHandler
	EventHandler  EventHandler
	PayoutHandler PayoutHandler
	BackupHandler BackupHandler
	AuthHandler   AuthHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		MemberHandler: membershandlers.New(s.MemberService),
		PriceHandler:  priceshandlers.New(s.PriceService),
		EventHandler:  eventshandlers.New(s.EventService),
		PayoutHandler: payoutshandlers.New(s.PayoutService),
		BackupHandler: backuphandlers.New(s.BackupService),
		AuthHandler:   authhandlers.New(s.AuthService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, gate *auth.Gate) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/session", h.AuthHandler.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(gate.Authenticate)

			r.Get("/members", h.MemberHandler.List)
			r.Get("/prices", h.PriceHandler.List)
			r.Get("/prices/{eventType}", h.PriceHandler.Get)
			r.Get("/events", h.EventHandler.List)
			r.Get("/payouts", h.PayoutHandler.ListPending)
			r.Get("/payouts/history", h.PayoutHandler.History)
			r.Get("/payouts/{memberId}", h.PayoutHandler.GetPending)
			r.Get("/backup", h.BackupHandler.Export)

			r.Group(func(r chi.Router) {
				r.Use(gate.RequireFullAccess)

				r.Post("/members", h.MemberHandler.Add)
				r.Put("/members/{id}", h.MemberHandler.Update)
				r.Delete("/members/{id}", h.MemberHandler.Remove)
				r.Put("/prices/{eventType}", h.PriceHandler.Set)
				r.Post("/events", h.EventHandler.Record)
				r.Post("/payouts/complete", h.PayoutHandler.CompleteAll)
				r.Post("/payouts/{memberId}/complete", h.PayoutHandler.Complete)
				r.Post("/backup", h.BackupHandler.Restore)
			})
		})
	})

	return r
}
