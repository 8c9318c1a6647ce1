package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medichannel/admincli/internal/logging"
)

// Server is the stub channeling backend.
type Server struct {
	log      logging.Logger
	secret   []byte
	fixtures *Fixtures
	router   chi.Router
	now      func() time.Time
}

func New(secret string, log logging.Logger) *Server {
	s := &Server{
		log:      log.With("component", "stubserver"),
		secret:   []byte(secret),
		fixtures: NewFixtures(),
		now:      time.Now,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/v1/user/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Put("/api/v1/user/password", s.handlePasswordChange)

		r.Get("/api/v1/doctor/getDoctors", s.handleList("doctors"))
		r.Post("/api/v1/doctor/save", s.handleSave("doctors", "id"))
		r.Put("/api/v1/doctor/update", s.handleUpdate("doctors", "id"))
		r.Delete("/api/v1/doctor", s.handleDelete("doctors", "id"))

		r.Get("/api/v1/medical/center/getAll", s.handleList("centers"))
		r.Get("/api/v1/medical/center/channelingRooms", s.handleRooms)
		r.Get("/api/v1/medical/center/{id}", s.handleCenter)
		r.Post("/api/v1/medical/center/save", s.handleSave("centers", "id"))
		r.Put("/api/v1/medical/center/update", s.handleUpdate("centers", "id"))

		r.Get("/api/v1/channeling/room/schedule/all-active-schedules", s.handleList("schedules"))
		r.Post("/api/v1/channeling/room/schedule/save", s.handleSave("schedules", "scheduleId"))
		r.Put("/api/v1/channeling/room/schedule/update", s.handleUpdate("schedules", "scheduleId"))
		r.Delete("/api/v1/channeling/room/schedule/delete", s.handleDelete("schedules", "scheduleId"))

		r.Get("/api/v1/admin/getAll", s.handleList("admins"))
		r.Post("/api/v1/admin/save", s.handleSave("admins", "id"))
		r.Put("/api/v1/admin/update", s.handleUpdate("admins", "id"))
		r.Delete("/api/v1/admin", s.handleDelete("admins", "id"))

		r.Get("/api/v1/patient/getAll", s.handleList("patients"))
		r.Delete("/api/v1/patient", s.handleDelete("patients", "id"))

		r.Get("/api/v1/payment/payemntSummary", s.handleList("payments"))

		r.Get("/api/v1/comment/getAll", s.handleList("comments"))
		r.Put("/api/v1/comment/approve", s.handleApproveComment)
		r.Delete("/api/v1/comment", s.handleDelete("comments", "id"))

		r.Get("/api/v1/email/templates", s.handleList("templates"))
		r.Post("/api/v1/email/send", s.handleSendCampaign)
	})

	s.router = r
}
