package router

import (
	"database/sql"
	"net/http"

	authhandler "catatanku/internal/authentication"
	authrepo "catatanku/internal/authentication/repository"
	authservice "catatanku/internal/authentication/service"
	collabhandler "catatanku/internal/collaboration"
	collabrepo "catatanku/internal/collaboration/repository"
	collabservice "catatanku/internal/collaboration/service"
	"catatanku/internal/config"
	notehandler "catatanku/internal/note"
	noterepo "catatanku/internal/note/repository"
	noteservice "catatanku/internal/note/service"
	userhandler "catatanku/internal/user"
	userrepo "catatanku/internal/user/repository"
	userservice "catatanku/internal/user/service"
	"catatanku/middleware"
	"catatanku/pkg/tokenize"

	"github.com/go-chi/chi/v5"
)

func Setup(db *sql.DB, cfg *config.Config) http.Handler {
	tokens := tokenize.NewTokenManager(cfg.AccessTokenKey, cfg.RefreshTokenKey, cfg.AccessTokenAge)

	userService := userservice.NewUserService(userrepo.NewUserRepository(db))
	userHandler := userhandler.NewUserHandler(userService)

	authService := authservice.NewAuthenticationService(authrepo.NewAuthenticationRepository(db), userService, tokens)
	authHandler := authhandler.NewAuthenticationHandler(authService)

	collabRepo := collabrepo.NewCollaborationRepository(db)
	noteService := noteservice.NewNoteService(noterepo.NewNoteRepository(db), collabRepo)
	noteHandler := notehandler.NewNoteHandler(noteService)

	collabService := collabservice.NewCollaborationService(collabRepo, noteService)
	collabHandler := collabhandler.NewCollaborationHandler(collabService)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)

	r.Post("/users", userHandler.PostUser)
	r.Get("/users/{id}", userHandler.GetUserByID)
	r.Get("/users", userHandler.GetUsers)

	r.Post("/authentications", authHandler.PostAuthentication)
	r.Put("/authentications", authHandler.PutAuthentication)
	r.Delete("/authentications", authHandler.DeleteAuthentication)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens))

		r.Post("/notes", noteHandler.PostNote)
		r.Get("/notes", noteHandler.GetNotes)
		r.Get("/notes/{id}", noteHandler.GetNoteByID)
		r.Put("/notes/{id}", noteHandler.PutNoteByID)
		r.Delete("/notes/{id}", noteHandler.DeleteNoteByID)

		r.Post("/collaborations", collabHandler.PostCollaboration)
		r.Delete("/collaborations", collabHandler.DeleteCollaboration)
	})

	return r
}
