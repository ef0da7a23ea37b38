package main

import (
	"log"
	"net/http"

	euchre "github.com/eadyb/EuchreMobile"
	"github.com/eadyb/EuchreMobile/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(euchre.NewInMemoryGameStore(), cfg)

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
