package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"activityboard/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(activityController *controllers.ActivityController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes. Activity names are path segments and may contain
	// percent-encoded spaces; the mux decodes them before PathValue.
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", activityController.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", activityController.Unregister)

	// The original UI lived at the root; redirect to the browsable API docs.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusTemporaryRedirect)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
