// Command hashpassword prints a bcrypt hash for ORGANIZER_PASSWORD_HASH.
//
//	go run ./cmd/hashpassword 'organizer password'
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Dosada05/swiss-tournament/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) != 2 {
		logger.Error("usage: hashpassword <password>")
		os.Exit(2)
	}

	hash, err := services.HashPassword(os.Args[1])
	if err != nil {
		logger.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}
