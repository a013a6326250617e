package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/OpenShelf/library-backend/internal/auth"
	"github.com/OpenShelf/library-backend/internal/catalog"
	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/lending"
	"github.com/OpenShelf/library-backend/internal/middleware"
	"github.com/OpenShelf/library-backend/internal/support"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	catalog.Init()
	lending.Init()
	support.Init()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	auth.RegisterRoutes(r)
	catalog.RegisterRoutes(r)
	lending.RegisterRoutes(r)
	support.RegisterRoutes(r)

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
