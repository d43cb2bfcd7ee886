package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"volunteermatch/internal/delivery/http/controllers"
	"volunteermatch/internal/delivery/http/middleware"
	"volunteermatch/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Matches     *controllers.MatchController
	Invitations *controllers.InvitationController
	Volunteers  *controllers.VolunteerController
}

// NewRouter initializes the HTTP router with all application routes.
// Every API route requires a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Matches
	mux.HandleFunc("GET /matches", auth(c.Matches.GetAllMatches))
	mux.HandleFunc("POST /matches", auth(c.Matches.CreateMatch))
	mux.HandleFunc("POST /events/{eventID}/matches", auth(c.Matches.CalculateMatches))
	mux.HandleFunc("GET /events/{eventID}/recommended-volunteers", auth(c.Matches.GetRecommendedVolunteers))

	// Invitations
	mux.HandleFunc("POST /events/{eventID}/invitations", auth(c.Invitations.SendInvitation))
	mux.HandleFunc("GET /volunteers/me/invitations", auth(c.Invitations.GetPendingInvitations))
	mux.HandleFunc("GET /volunteers/me/matches", auth(c.Invitations.GetAcceptedMatches))
	mux.HandleFunc("POST /volunteers/me/invitations/{matchID}/respond", auth(c.Invitations.RespondToInvitation))

	// Volunteers
	mux.HandleFunc("GET /volunteers/me", auth(c.Volunteers.GetMe))
	mux.HandleFunc("GET /volunteers/me/recommendations", auth(c.Matches.GetMyRecommendations))
	mux.HandleFunc("GET /volunteers/{volunteerID}", auth(c.Volunteers.GetByID))
	mux.HandleFunc("GET /volunteers/{volunteerID}/matches", auth(c.Matches.GetVolunteerMatches))
	mux.HandleFunc("GET /volunteers/{volunteerID}/recommendations", auth(c.Matches.GetVolunteerRecommendations))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
