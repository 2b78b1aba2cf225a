package routes

import (
	"net/http"
	"time"

	"github.com/SebastianOso/api-habi3/controllers/auth"
	"github.com/SebastianOso/api-habi3/controllers/users"
	"github.com/SebastianOso/api-habi3/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers all user-facing routes on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// session traffic: 120 read, 60 write per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)

	// Auth
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)

	// Missions
	api.Handle("/missions", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MissionListHandler)))).Methods(http.MethodGet)
	api.Handle("/missions/complete", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CompleteMissionHandler)))).Methods(http.MethodPost)

	// Quizzes
	api.Handle("/quizzes", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.QuizListHandler)))).Methods(http.MethodGet)
	api.Handle("/quizzes/complete", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CompleteQuizHandler)))).Methods(http.MethodPost)
	api.Handle("/quizzes/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.QuizDetailHandler)))).Methods(http.MethodGet)

	// Shop and inventory
	api.Handle("/shop", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ShopListHandler)))).Methods(http.MethodGet)
	api.Handle("/shop/buy", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.BuyItemHandler)))).Methods(http.MethodPost)
	api.Handle("/shop/use", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UseItemHandler)))).Methods(http.MethodPost)

	// Profile stats
	api.Handle("/users/stats", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.StatsHandler)))).Methods(http.MethodGet)
}
