package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"paylink/internal/config"
	"paylink/internal/handlers"
	"paylink/internal/metrics"
	"paylink/internal/payment/accountpe/auth"
	"paylink/internal/payment/accountpe/paylink"
	"paylink/internal/payment/checkout"
	httpClient "paylink/internal/utility/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

func main() {
	conf, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	client := httpClient.NewHttpClientWith(metrics.InstrumentClient(&http.Client{}))
	flow := checkout.NewCheckout(
		auth.NewAuthenticator(client, conf.AccountPe.BaseURL, conf.Credentials()),
		paylink.NewCreator(client, conf.AccountPe.BaseURL),
	)
	payments := handlers.NewPaymentHandler(flow, conf.AccountPe.CallbackURL)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   conf.API.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Payment routes
	r.Route("/payments", func(r chi.Router) {
		r.Get("/link", payments.GetPaymentLink)
		r.Post("/link", payments.CreatePaymentLink)
	})

	// Start the server
	addr := ":" + conf.API.Port
	fmt.Printf("Server is running on http://localhost%s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
