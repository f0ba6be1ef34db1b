package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/avelinec/tallysheet/app"
	"github.com/avelinec/tallysheet/internal/service"
)

func main() {
	// Missing .env is fine, the defaults below cover local runs.
	_ = godotenv.Load()

	svcBilling := service.NewBilling()

	app := app.New(slog.Default(), svcBilling)

	if host := os.Getenv("TALLYSHEET_HOST"); host != "" {
		app = app.WithHost(host)
	}
	if rawPort := os.Getenv("TALLYSHEET_PORT"); rawPort != "" {
		port, err := strconv.ParseUint(rawPort, 10, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid TALLYSHEET_PORT %q: %v\n", rawPort, err)
			os.Exit(1)
		}
		app = app.WithPort(uint(port))
	}

	// Run the server
	err := app.Serve()
	if err != nil {
		fmt.Println(err)
	}
}
