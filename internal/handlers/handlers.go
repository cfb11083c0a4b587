package handlers

import (
	"net/http"

	_ "github.com/dmarkov/coindrop/docs"
	authhandlers "github.com/dmarkov/coindrop/internal/handlers/auth"
	donationhandlers "github.com/dmarkov/coindrop/internal/handlers/donations"
	pledgehandlers "github.com/dmarkov/coindrop/internal/handlers/pledges"
	pointshandlers "github.com/dmarkov/coindrop/internal/handlers/points"
	"github.com/dmarkov/coindrop/internal/service"
	"github.com/dmarkov/coindrop/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PledgeHandler interface {
	CreatePledge(w http.ResponseWriter, r *http.Request)
	GetPledges(w http.ResponseWriter, r *http.Request)
	GetTasks(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ReportAmountSent(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetPoints(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	GetDonations(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PledgeHandler   PledgeHandler
	PointsHandler   PointsHandler
	DonationHandler DonationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PledgeHandler:   pledgehandlers.New(s.PledgeService),
		PointsHandler:   pointshandlers.New(s.PointsService),
		DonationHandler: donationhandlers.New(s.DonationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/verify", h.AuthHandler.Verify)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/points", h.PointsHandler.GetPoints)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/pledges", func(r chi.Router) {
				r.Post("/", h.PledgeHandler.CreatePledge)
				r.Get("/", h.PledgeHandler.GetPledges)
				r.Get("/{id}/tasks", h.PledgeHandler.GetTasks)
				r.Patch("/{id}/status", h.PledgeHandler.UpdateStatus)
				r.Post("/{id}/amount-sent", h.PledgeHandler.ReportAmountSent)
			})
			r.Get("/donations", h.DonationHandler.GetDonations)
			r.Get("/leaderboard", h.PointsHandler.Leaderboard)
		})
	})

	return r
}
