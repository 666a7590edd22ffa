package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type CardapioHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	port      string
}

func NewCardapioHttpServer(router *Router, muxRouter *mux.Router, port string) *CardapioHttpServer {
	return &CardapioHttpServer{
		router:    router,
		muxRouter: muxRouter,
		port:      port,
	}
}

// Start registers the routes, serves until interrupted and then shuts down
// gracefully.
func (s *CardapioHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on :" + s.port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
