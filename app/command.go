package app

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"apod-wallpaper/config"
	"apod-wallpaper/utils"
)

var (
	version = "dev"
	commit  = "unknown"
)

// NewRootCommand builds the apod-wallpaper command. base supplies the
// wallpaper facility and HTTP client; flags decide the rest.
func NewRootCommand(out io.Writer, base Options) *cobra.Command {
	var (
		envFile     string
		date        string
		preferHD    bool
		noWallpaper bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "apod-wallpaper",
		Short: "Set NASA's Astronomy Picture of the Day as the desktop background",
		Long: `Fetches the Astronomy Picture of the Day, burns its title, date and
explanation into the image as a faint watermark and sets the result
as the desktop background.

Configuration is read from the environment (and from --env-file):
  NASA_API_KEY             API key for api.nasa.gov
  SAVE_DIRECTORY           where the original image is downloaded
  UPDATED_SAVE_DIRECTORY   where the captioned image is written
  FONT_PATH                TrueType/OpenType font used for the caption`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SetVerbose(verbose)
			LoadEnv(envFile)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			opts := base
			opts.SetWallpaper = !noWallpaper
			opts.Out = out

			pipeline, closeFn, err := Initialize(cfg, opts)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			_, err = pipeline.Run(ctx, RunOptions{Date: date, PreferHD: preferHD})
			return err
		},
	}

	cmd.SetOut(out)
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to a .env file with the configuration")
	cmd.Flags().StringVar(&date, "date", "", "Fetch the picture for this date (YYYY-MM-DD) instead of today")
	cmd.Flags().BoolVar(&preferHD, "hd", false, "Download the high resolution image when available")
	cmd.Flags().BoolVar(&noWallpaper, "no-wallpaper", false, "Write the captioned image without changing the wallpaper")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	return cmd
}
