// Command httpserver composes the server core with the sample dogstore
// handlers into a runnable binary. It is, like the handlers it wires in,
// outside the core's scope (§1): a command-line entry point treated as an
// external collaborator.
package main

import (
	"flag"
	"log"

	"github.com/curol/httpcore/examples/dogstore"
	"github.com/curol/httpcore/server"
)

func main() {
	address := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	config := server.DefaultConfig(*address)
	registry := server.NewRegistry()

	store := dogstore.NewDogStore()
	if err := registry.Add(dogstore.NewGetHandler(store)); err != nil {
		log.Fatalf("registering GET /dogs: %v", err)
	}
	if err := registry.Add(dogstore.NewPostHandler(store)); err != nil {
		log.Fatalf("registering POST /dogs: %v", err)
	}

	listener, err := server.NewListener(config, registry)
	if err != nil {
		log.Fatalf("binding %s: %v", *address, err)
	}
	log.Printf("listening on %s", *address)
	if err := listener.Serve(); err != nil {
		log.Fatalf("accept loop: %v", err)
	}
}
