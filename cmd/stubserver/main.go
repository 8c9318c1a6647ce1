package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/medichannel/admincli/internal/logging"
	"github.com/medichannel/admincli/internal/server"
)

func main() {

	addr := flag.String("a", ":8080", "address to listen on")
	secret := flag.String("k", "", "JWT signing secret")
	flag.Parse()

	_ = godotenv.Load()
	if *secret == "" {
		*secret = os.Getenv("ADMINCLI_JWT_SECRET")
	}
	if *secret == "" {
		*secret = "dev-only-secret"
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	srv := server.New(*secret, logger)

	log.Printf("stub backend listening on %s", *addr)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Printf("%v", err)
	}

}
