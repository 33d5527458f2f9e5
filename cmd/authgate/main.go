package main

import (
	"context"
	"log"
	"os"

	"github.com/goliatone/go-authgate"
	"github.com/goliatone/go-authgate/provider/cognito"
)

// Environment is read only here; everything downstream takes explicit
// configuration structs.
func main() {
	ctx := context.Background()

	cfg := cognito.Config{
		UserPoolID: os.Getenv("USER_POOL_ID"),
		ClientID:   os.Getenv("CLIENT_ID"),
		Region:     os.Getenv("AWS_REGION"),
	}

	ops, err := cognito.New(ctx, cfg)
	if err != nil {
		log.Fatalf("cognito provider: %v", err)
	}

	var opts []authgate.DispatcherOption
	if os.Getenv("AUTHGATE_VERIFY_TOKENS") == "true" {
		inspector, err := authgate.NewVerifyingInspector(authgate.VerifierConfig{
			Region:     cfg.Region,
			UserPoolID: cfg.UserPoolID,
		})
		if err != nil {
			log.Fatalf("token verifier: %v", err)
		}
		defer inspector.Close()
		opts = append(opts, authgate.WithTokenInspector(inspector))
	}

	dispatcher := authgate.NewDispatcher(ops, opts...)
	server := authgate.NewServer(dispatcher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := server.Listen(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
