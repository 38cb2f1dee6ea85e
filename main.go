package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newRootCmd builds the wellness-bot command. It takes no arguments or
// flags; everything is asked interactively on stdin.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wellness-bot",
		Short: "Interactive BMI, BMR and daily calorie calculator",
		Long: `Asks for age, gender, height, weight, activity level, sleep, lifestyle
and dietary preference, then prints BMI, BMR, daily caloric needs,
macronutrient targets and personalized recommendations. Usage:

	wellness-bot
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			// Last-resort trap: a panic anywhere in the run becomes an
			// ordinary error so main can report it and exit 1.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("unexpected failure: %v", r)
				}
			}()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			sessionID := uuid.New().String()
			configureLogging(cmd.ErrOrStderr(), cfg)
			log.Printf("[config] session=%s env=%s dotenv=%t", sessionID, cfg.AppEnv, cfg.DotEnvLoaded)

			return newSession(sessionID).run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// configureLogging sends diagnostics to w when debug is on and discards them
// otherwise, so the interview transcript stays clean.
func configureLogging(w io.Writer, cfg *appConfig) {
	log.SetPrefix("wellness-bot: ")
	log.SetFlags(0)
	if cfg.Debug {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}
