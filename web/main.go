package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/user/go-sample-pathtracer/web/server"
)

func main() {
	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	s := server.NewServer()
	log.Fatal(s.Start(":" + port))
}
