package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/introducer"
)

// cli carries the parsed configuration and flags shared by all commands.
type cli struct {
	config Config
	logger *slog.Logger

	verbose    bool
	greeting   string
	phrasebook string
	pattern    string
	style      string
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "introducer",
		Short: "Compose self-introductions from a greeting and a name",
		Long: `introducer prints introductions such as "Hello! My name is Ada.".
Greetings come from a fixed phrase or from a phrasebook directory of YAML/JSON
greeting styles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			c.config = config

			level, err := parseLevel(config.LogLevel)
			if err != nil {
				return err
			}
			if c.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(c.logger)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&c.greeting, "greeting", "g", "", "Fixed greeting phrase (overrides any phrasebook)")
	flags.StringVarP(&c.phrasebook, "phrasebook", "p", "", "Phrasebook directory")
	flags.StringVar(&c.pattern, "pattern", "", "Doublestar pattern selecting phrasebook files")
	flags.StringVarP(&c.style, "style", "s", "", "Phrasebook greeting style")

	cmd.AddCommand(
		newIntroduceCmd(c),
		newIdentityCmd(),
		newStylesCmd(c),
		newWatchCmd(c),
		newVersionCmd(),
	)
	return cmd
}

// options turns flags and configuration into library options.
// An explicit --greeting wins; otherwise a phrasebook (flag, environment,
// then a discovered .introducer directory); otherwise the configured phrase.
func (c *cli) options(cmd *cobra.Command) []introducer.Option {
	opts := []introducer.Option{introducer.WithLogger(c.logger)}

	if cmd.Flags().Changed("greeting") {
		return append(opts, introducer.WithGreeting(c.greeting))
	}

	if book := c.phrasebookPath(cmd); book != "" {
		pattern := c.config.Pattern
		if cmd.Flags().Changed("pattern") {
			pattern = c.pattern
		}
		style := c.config.Style
		if cmd.Flags().Changed("style") {
			style = c.style
		}
		return append(opts,
			introducer.WithPhrasebook(book),
			introducer.WithPattern(pattern),
			introducer.WithStyle(style),
		)
	}

	return append(opts, introducer.WithGreeting(c.config.Greeting))
}

func (c *cli) phrasebookPath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("phrasebook") {
		return c.phrasebook
	}
	if c.config.Phrasebook != "" {
		return c.config.Phrasebook
	}
	if !c.config.Discover {
		return ""
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	found, err := introducer.FindPhrasebook(wd)
	if err != nil {
		c.logger.Debug("no phrasebook discovered", "error", err)
		return ""
	}
	c.logger.Debug("phrasebook discovered", "path", found)
	return found
}

func (c *cli) open(cmd *cobra.Command) (*introducer.Introducer, *introducer.Phrasebook, error) {
	return introducer.Open(c.options(cmd)...)
}
