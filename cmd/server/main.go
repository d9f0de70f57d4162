package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"script_dashboard/internal/api"
	"script_dashboard/internal/cache"
	"script_dashboard/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, relying on environment")
	}

	port := getenv("PORT", "8080")
	dbPath := getenv("SCRIPT_DB_PATH", "sessions.db")
	cacheDir := getenv("SCRIPT_CACHE_DIR", ".analysis_cache")

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("[ERROR] open session store at %s: %v", dbPath, err)
	}
	defer st.Close()

	srv := api.New(st, cache.New(cacheDir))

	log.Printf("[INFO] script analysis server listening on :%s (db=%s cache=%s)", port, dbPath, cacheDir)
	if err := http.ListenAndServe(":"+port, srv.Routes()); err != nil {
		log.Fatalf("[ERROR] server stopped: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
