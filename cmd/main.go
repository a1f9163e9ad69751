package main

import (
	"errors"
	"log"

	"simpleHttpServer/pkg"
)

func main() {
	registry := pkg.NewRegistry()
	pkg.RegisterBuiltin(registry)

	srv := registry.Get(pkg.ServerIDHTTPTCP)
	if srv == nil {
		log.Panic("no tcp server registered")
	}

	if err := srv.Start(pkg.DefaultPort); err != nil {
		log.Panic(err)
	}
	defer srv.Stop()

	log.Printf("listening on %s:%d", srv.IPAddress(), srv.Port())

	for {
		req, err := srv.ReceiveMessage()
		if err != nil {
			if errors.Is(err, pkg.ErrNotRunning) || !srv.IsRunning() {
				return
			}

			log.Printf("receive: %v", err)
			continue
		}

		log.Printf("%s %s from %s:%d (%d body bytes)",
			req.Method(), req.Path(), req.ClientIP(), req.ClientPort(), len(req.BodyBytes()))
	}
}
