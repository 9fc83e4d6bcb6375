package main

import (
	"embed"
	"log"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"github.com/spendtrack/spendtrack-api/internal/api"
)

//go:embed sql/schema/*.sql
var embedMigrations embed.FS

func main() {
	cfg := api.LoadEnvConfig(".env")
	cfg.ConnectToDB(embedMigrations, "sql/schema")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	spendtrack := &http.Server{
		Addr:    ":" + port,
		Handler: api.SetupMux(cfg),
	}

	// start server
	log.Printf("Server starting on port %s", port)
	log.Fatal(spendtrack.ListenAndServe())
}
