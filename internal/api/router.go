package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mkarlsson/farmtrack/internal/api/handlers"
	"github.com/mkarlsson/farmtrack/internal/api/middleware"
	"github.com/mkarlsson/farmtrack/internal/config"
	"github.com/mkarlsson/farmtrack/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	animalHandler := handlers.NewAnimalHandler(services.Animal)
	individualHandler := handlers.NewIndividualHandler(services.Individual)
	noteHandler := handlers.NewNoteHandler(services.Note)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/profile", authHandler.Profile)
				r.Post("/delete-account", authHandler.DeleteAccount)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/animals", func(r chi.Router) {
				r.Get("/", animalHandler.List)
				r.Post("/", animalHandler.Create)
				r.Put("/{id}", animalHandler.Update)
				r.Delete("/{id}", animalHandler.Delete)
			})

			r.Route("/individuals", func(r chi.Router) {
				r.Post("/", individualHandler.Create)
				r.Get("/{animalType}", individualHandler.ListByType)
				r.Get("/{animalType}/{name}", individualHandler.GetByName)
				r.Post("/{animalType}/{name}/notes", individualHandler.AddNote)
				r.Put("/{animalType}/{id}", individualHandler.Update)
				r.Delete("/{animalType}/{id}", individualHandler.Delete)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/species/{species}", noteHandler.ListBySpecies)
				r.Get("/individual/{individualId}", noteHandler.ListByIndividual)
				r.Post("/", noteHandler.Create)
				r.Put("/{id}", noteHandler.Update)
				r.Delete("/{id}", noteHandler.Delete)
			})
		})
	})

	return r
}
