package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"roadservice/internal/config"
	"roadservice/internal/http/handlers"
	middlewarex "roadservice/internal/http/middleware"
	intersectionsvc "roadservice/internal/services/intersection"
	roadsvc "roadservice/internal/services/road"
	signsvc "roadservice/internal/services/sign"
)

// APIPrefix is the root of the resource endpoints.
const APIPrefix = "/api/1"

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config        config.Cfg
	DB            handlers.Pinger
	Metrics       *middlewarex.Metrics
	Intersections *intersectionsvc.Service
	Roads         *roadsvc.Service
	Signs         *signsvc.Service
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middlewarex.AccessLog)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get("/health", handlers.Health(deps.DB))

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(middlewarex.RateLimit(deps.Config.HTTP.RateLimitPerMin))

		r.Route("/intersections", func(r chi.Router) {
			r.Get("/", handlers.ListIntersections(deps.Intersections))
			r.Post("/", handlers.CreateIntersection(deps.Intersections))
			r.Get("/{id}", handlers.GetIntersection(deps.Intersections))
			r.Put("/{id}", handlers.UpdateIntersection(deps.Intersections))
			r.Delete("/{id}", handlers.DeleteIntersection(deps.Intersections))
		})

		r.Route("/roads", func(r chi.Router) {
			r.Get("/", handlers.ListRoads(deps.Roads))
			r.Post("/", handlers.CreateRoad(deps.Roads))
			r.Get("/{id}", handlers.GetRoad(deps.Roads))
			r.Put("/{id}", handlers.UpdateRoad(deps.Roads))
			r.Delete("/{id}", handlers.DeleteRoad(deps.Roads))
		})

		r.Route("/signs", func(r chi.Router) {
			r.Get("/", handlers.ListSigns(deps.Signs))
			r.Post("/", handlers.CreateSign(deps.Signs))
			r.Get("/{id}", handlers.GetSign(deps.Signs))
			r.Put("/{id}", handlers.UpdateSign(deps.Signs))
			r.Delete("/{id}", handlers.DeleteSign(deps.Signs))
		})
	})

	return r
}
