package app

import (
	"net/http"
	"time"

	"combustion/internal/thermo"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string         // data directory, e.g. $HOME/.combustion
	LibraryPath string         // optional; serve materials from this JSON file instead of Home
	ServerURL   string         // optional; run calculations on a thermod server, e.g. http://127.0.0.1:8080
	HTTP        *http.Client   // optional; defaults to a client with Timeout
	Timeout     time.Duration  // per-request HTTP timeout; defaults to 30s
	Options     thermo.Options // numeric settings; zero fields take defaults
}

const defaultTimeout = 30 * time.Second
