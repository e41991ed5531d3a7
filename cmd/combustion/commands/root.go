package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"combustion/internal/app"
	"combustion/internal/thermo"
)

var (
	home      string
	library   string
	serverURL string
	timeout   time.Duration
	appCtx    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "combustion",
		Short:        "Reaction enthalpy and adiabatic flame temperature calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".combustion")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(app.Config{
				Home:        home,
				LibraryPath: library,
				ServerURL:   serverURL,
				Timeout:     timeout,
				Options:     thermo.DefaultOptions(),
			})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.combustion)")
	root.PersistentFlags().StringVar(&library, "library", "", "read materials from this JSON library file instead of --home")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "thermod base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "deadline for a calculation or server request")

	root.AddCommand(calcCmd(), speciesCmd())
	return root.Execute()
}
