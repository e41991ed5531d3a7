package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"combustion/internal/app"
	"combustion/internal/thermo"
)

func main() {
	var (
		addr        string
		home        string
		library     string
		calcTimeout time.Duration
	)
	cmd := &cobra.Command{
		Use:          "thermod",
		Short:        "Combustion calculation server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home == "" && library == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".combustion")
			}
			if home != "" {
				if err := os.MkdirAll(home, 0o700); err != nil {
					return err
				}
			}

			w, err := app.NewWire(app.Config{
				Home:        home,
				LibraryPath: library,
				Options:     thermo.DefaultOptions(),
			})
			if err != nil {
				return err
			}

			logger := log.New(os.Stderr, "thermod ", log.LstdFlags)
			srv := &http.Server{
				Addr:              addr,
				Handler:           newServer(w.Species, w.Calculations, calcTimeout, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Printf("listening on %s", addr)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&home, "home", "", "data dir (default ~/.combustion)")
	cmd.Flags().StringVar(&library, "library", "", "serve materials from this JSON library file, in memory")
	cmd.Flags().DurationVar(&calcTimeout, "calc-timeout", 30*time.Second, "deadline for one calculation")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
