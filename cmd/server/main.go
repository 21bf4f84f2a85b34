package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Garsondee/Shield-Bash/internal/game"
	"github.com/Garsondee/Shield-Bash/internal/server"
)

func main() {
	var addr string
	var level string
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&level, "level", "training-field", "built-in level name")
	flag.Parse()

	desc, ok := game.LevelByName(level)
	if !ok {
		log.Fatalf("unknown level %q", level)
	}
	session, err := game.LoadLevel(desc)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}

	srv := server.New(session)
	http.HandleFunc("/ws", srv.Handler())

	log.Printf("shield-bash server on %s (level %s, session %s)", addr, desc.Name, session.ID())
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
