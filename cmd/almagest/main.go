// Command almagest is a command line front end for the ephemeris
// engine: sky positions, lunar phases, planetary elongations, and the
// seasons, computed locally with no network access.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/search"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
)

const version = "v1.0.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "almagest",
	Short:   "Compute positions of the Sun, Moon, and planets",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".almagest")
	}
	viper.SetEnvPrefix("almagest")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func observerFromConfig() (earth.Observer, error) {
	obs := earth.Observer{
		Latitude:  viper.GetFloat64("observer.lat"),
		Longitude: viper.GetFloat64("observer.lon"),
		Height:    viper.GetFloat64("observer.height"),
	}
	if obs.Latitude < -90 || obs.Latitude > 90 {
		return earth.Observer{}, fmt.Errorf("latitude %f out of [-90, 90]", obs.Latitude)
	}
	if obs.Longitude < -180 || obs.Longitude > 180 {
		return earth.Observer{}, fmt.Errorf("longitude %f out of [-180, 180]", obs.Longitude)
	}
	return obs, nil
}

func timeFromFlag(cmd *cobra.Command) (*timescale.Time, error) {
	s, err := cmd.Flags().GetString("time")
	if err != nil {
		return nil, err
	}
	if s == "" {
		return timescale.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return timescale.FromGoTime(parsed), nil
}

var positionCmd = &cobra.Command{
	Use:   "position <body>",
	Short: "Topocentric right ascension and declination of a body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := ephemeris.BodyFromName(args[0])
		if err != nil {
			return err
		}
		t, err := timeFromFlag(cmd)
		if err != nil {
			return err
		}
		obs, err := observerFromConfig()
		if err != nil {
			return err
		}
		ofdate, err := cmd.Flags().GetBool("ofdate")
		if err != nil {
			return err
		}
		eq, err := transform.Equator(body, t, obs, ofdate, true)
		if err != nil {
			return err
		}
		frame := "J2000"
		if ofdate {
			frame = "of date"
		}
		fmt.Printf("%s at %s (%s)\n", body, t, frame)
		fmt.Printf("  RA   %10.6f h\n", eq.RA)
		fmt.Printf("  Dec  %+10.6f deg\n", eq.Dec)
		fmt.Printf("  Dist %12.8f AU\n", eq.Dist)
		return nil
	},
}

var horizonCmd = &cobra.Command{
	Use:   "horizon <body>",
	Short: "Azimuth and altitude of a body for the configured observer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := ephemeris.BodyFromName(args[0])
		if err != nil {
			return err
		}
		t, err := timeFromFlag(cmd)
		if err != nil {
			return err
		}
		obs, err := observerFromConfig()
		if err != nil {
			return err
		}
		refraction := transform.RefractionNormal
		switch s, _ := cmd.Flags().GetString("refraction"); s {
		case "normal":
		case "none":
			refraction = transform.RefractionNone
		case "jplhor":
			refraction = transform.RefractionJPLHor
		default:
			return fmt.Errorf("invalid refraction %q: want none, normal, or jplhor", s)
		}
		eq, err := transform.Equator(body, t, obs, true, true)
		if err != nil {
			return err
		}
		hor, err := transform.Horizon(t, obs, eq.RA, eq.Dec, refraction)
		if err != nil {
			return err
		}
		fmt.Printf("%s at %s from %.4f %.4f\n", body, t, obs.Latitude, obs.Longitude)
		fmt.Printf("  Azimuth  %9.4f deg\n", hor.Azimuth)
		fmt.Printf("  Altitude %+9.4f deg\n", hor.Altitude)
		return nil
	},
}

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Upcoming lunar quarter events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := timeFromFlag(cmd)
		if err != nil {
			return err
		}
		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		if count < 1 || count > 60 {
			return fmt.Errorf("count %d out of [1, 60]", count)
		}
		names := [4]string{"new moon      ", "first quarter ", "full moon     ", "third quarter "}
		mq, err := search.SearchMoonQuarter(t)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			fmt.Printf("%s %s\n", names[mq.Quarter], mq.Time)
			if i < count-1 {
				if mq, err = search.NextMoonQuarter(mq); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

var elongationCmd = &cobra.Command{
	Use:   "elongation <body>",
	Short: "Next maximum elongation of Mercury or Venus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := ephemeris.BodyFromName(args[0])
		if err != nil {
			return err
		}
		t, err := timeFromFlag(cmd)
		if err != nil {
			return err
		}
		ev, err := search.SearchMaxElongation(body, t)
		if err != nil {
			return err
		}
		if ev == nil {
			return fmt.Errorf("no elongation event found for %s", body)
		}
		fmt.Printf("%s greatest elongation: %s\n", body, ev.Time)
		fmt.Printf("  Elongation %7.3f deg (%s sky)\n", ev.Elongation, ev.Visibility)
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons <year>",
	Short: "Equinox and solstice times of a calendar year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		info, err := search.Seasons(year)
		if err != nil {
			return err
		}
		fmt.Printf("March equinox     %s\n", info.MarEquinox)
		fmt.Printf("June solstice     %s\n", info.JunSolstice)
		fmt.Printf("September equinox %s\n", info.SepEquinox)
		fmt.Printf("December solstice %s\n", info.DecSolstice)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.almagest.yaml)")
	rootCmd.PersistentFlags().String("time", "", "evaluation time, RFC 3339 (default now)")
	rootCmd.PersistentFlags().Float64("lat", 0, "observer latitude in degrees")
	rootCmd.PersistentFlags().Float64("lon", 0, "observer longitude in degrees")
	rootCmd.PersistentFlags().Float64("height", 0, "observer height in meters")
	viper.BindPFlag("observer.lat", rootCmd.PersistentFlags().Lookup("lat"))
	viper.BindPFlag("observer.lon", rootCmd.PersistentFlags().Lookup("lon"))
	viper.BindPFlag("observer.height", rootCmd.PersistentFlags().Lookup("height"))

	positionCmd.Flags().Bool("ofdate", false, "use the true equator and equinox of date")
	horizonCmd.Flags().String("refraction", "normal", "refraction model: none, normal, or jplhor")
	phasesCmd.Flags().Int("count", 8, "number of quarter events to list")

	rootCmd.AddCommand(positionCmd, horizonCmd, phasesCmd, elongationCmd, seasonsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
