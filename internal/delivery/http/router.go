package http

import (
	"net/http"
	"os"
	"path/filepath"

	"patient-chatbot/internal/delivery/http/handler"
	"patient-chatbot/internal/delivery/http/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	chatHandler         *handler.ChatHandler
	appointmentHandler  *handler.AppointmentHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestLogger       *middleware.RequestLogger
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metricsHandler      http.Handler
	staticDir           string
	log                 *logrus.Logger
}

// NewRouter wires the HTTP surface. rateLimitMiddleware and metricsHandler
// may be nil, and an empty staticDir disables the browser client.
func NewRouter(
	chatHandler *handler.ChatHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	metricsHandler http.Handler,
	staticDir string,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		chatHandler:         chatHandler,
		appointmentHandler:  appointmentHandler,
		corsMiddleware:      corsMiddleware,
		requestLogger:       requestLogger,
		rateLimitMiddleware: rateLimitMiddleware,
		metricsHandler:      metricsHandler,
		staticDir:           staticDir,
		log:                 log,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Chat
	var chatHandler http.Handler = http.HandlerFunc(r.chatHandler.Chat)
	if r.rateLimitMiddleware != nil {
		chatHandler = r.rateLimitMiddleware.Handle(chatHandler)
	}
	api.Handle("/chat", chatHandler).Methods(http.MethodPost, http.MethodOptions)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet, http.MethodOptions)

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	if r.staticDir != "" {
		if info, err := os.Stat(r.staticDir); err == nil && info.IsDir() {
			r.router.PathPrefix("/").Handler(spaHandler{staticDir: r.staticDir}).Methods(http.MethodGet, http.MethodHead)
		} else {
			r.log.Warnf("Static directory %q not found, browser client disabled", r.staticDir)
		}
	}

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(r.log),
		handlers.PrintRecoveryStack(false),
	)(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// spaHandler serves files from staticDir and falls back to index.html so
// client-side routes resolve.
type spaHandler struct {
	staticDir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
		return
	}

	http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, r)
}
