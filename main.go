package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// a .env file is optional, variables already set in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(fmt.Sprintf("could not load .env file: %s", err))
	}

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	log.Printf("starting server at: localhost:%s", server.Port)

	err = server.Run(fmt.Sprintf(":%s", server.Port))
	if err != nil {
		log.Fatal(fmt.Sprintf("could not start server: %s", err))
	}
}
