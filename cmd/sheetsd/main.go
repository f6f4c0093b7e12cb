package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/twystd/sheetsd/config"
	"github.com/twystd/sheetsd/gateway"
	"github.com/twystd/sheetsd/rest"
)

const VERSION = "v0.1.0"

var options = struct {
	debug   bool
	version bool
}{
	debug:   false,
	version: false,
}

func main() {
	flag.BoolVar(&options.debug, "debug", options.debug, "Enable debugging information")
	flag.BoolVar(&options.version, "version", options.version, "Display version information")
	flag.Parse()

	if options.version {
		fmt.Printf("%s\n", VERSION)
		os.Exit(0)
	}

	if options.debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	ctx := context.Background()

	client, err := authorize(ctx, cfg.Credentials)
	if err != nil {
		log.Fatalf("ERROR: authentication/authorization error (%v)", err)
	}

	gsheets, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Fatalf("ERROR: unable to create new Sheets client (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Fatalf("ERROR: unable to create new Drive client (%v)", err)
	}

	srv := rest.NewServer(gateway.NewGoogle(gsheets, gdrive))

	slog.Info("listening", "addr", cfg.Addr, "version", VERSION)

	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

// authorize builds an HTTP client authenticated with the service account
// credentials, scoped for read/write spreadsheet access and file listing.
func authorize(ctx context.Context, credentials []byte) (*http.Client, error) {
	jwt, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	if err != nil {
		return nil, err
	}

	return jwt.Client(ctx), nil
}
