package main

import (
	"log"
	"net/http"

	"campuscast/internal/config"
	"campuscast/internal/controllers"
	"campuscast/internal/i18n"
	"campuscast/internal/logger"
	"campuscast/internal/middleware"
	"campuscast/internal/routes"
	"campuscast/internal/session"
	"campuscast/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()

	// Session state (Redis when configured, in-memory otherwise)
	sessions := session.NewStore(config.NewKV())

	// Translation table
	translator, err := i18n.Load(config.LocalesPath())
	if err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}

	deps := controllers.Deps{
		Store:    store.New(db),
		Sessions: sessions,
		Tr:       translator,
	}

	// Setup Gin router
	r := routes.SetupRouter(deps)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ListenAddr()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
