package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/btmxh/tikgrab/internal/html"
	"github.com/btmxh/tikgrab/internal/media"
	"github.com/btmxh/tikgrab/internal/routes"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Unable to load .env file:", err)
	}

	logLevel := slog.LevelDebug
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			fmt.Println("(warn) Invalid value for LOG_LEVEL environment variable")
		}
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(logHandler))

	if err := media.InitResolver(); err != nil {
		panic(err)
	}
	slog.Info("Link resolver initialized")

	html.SetUseCDN(os.Getenv("USE_CDN") == "true")

	addr, ok := os.LookupEnv("TIKGRAB_ADDR")
	if !ok {
		addr = "localhost:6973"
		slog.Info("TIKGRAB_ADDR not provided, using default '" + addr + "'")
	}

	cert, hasCert := os.LookupEnv("HTTPS_CERT_FILE")
	key, hasKey := os.LookupEnv("HTTPS_KEY_FILE")

	router := routes.CreateMainRouter()

	var err error
	if hasKey && hasCert {
		slog.Info("Starting HTTPS server", slog.String("addr", addr), slog.String("cert", cert), slog.String("key", key))
		err = http.ListenAndServeTLS(addr, cert, key, router)
	} else {
		slog.Info("Starting HTTP server", slog.String("addr", addr))
		err = http.ListenAndServe(addr, router)
	}

	if err != nil {
		panic(err)
	}
}
