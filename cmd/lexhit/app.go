package main

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/lexhit/config"
	"github.com/revelaction/lexhit/file"
)

// RunOptions are the resolved options of a command running the detection.
type RunOptions struct {
	Config   config.Config
	NoColor  bool
	Progress bool
}

func newApp(ui UI) *cli.App {
	// cfg is loaded once by the Before hook and refined by each command.
	var cfg config.Config

	return &cli.App{
		Name:      "lexhit",
		Usage:     "detect lexicon hits in an annotated narrative corpus",
		Writer:    ui.Out,
		ErrWriter: ui.Err,

		HideVersion: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   file.ConfigFile,
				Usage:   "project configuration file",
				EnvVars: []string{"LEXHIT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
		},

		Before: func(c *cli.Context) error {
			var err error
			if c.IsSet("config") {
				cfg, err = config.Load(c.String("config"))
			} else {
				cfg, err = config.LoadOptional(c.String("config"))
			}
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if c.IsSet("log-level") {
				level = c.String("log-level")
			}
			if level == "" {
				return nil
			}

			if err := logging.SetLogLevel("*", level); err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			return nil
		},

		Commands: []*cli.Command{
			{
				Name:  "detect",
				Usage: "classify the corpus and write the result tables",
				Flags: append(runFlags(),
					&cli.BoolFlag{Name: "no-progress", Usage: "do not show the progress bar"},
					&cli.StringFlag{Name: "export", Usage: "also write the full report to this file"},
					&cli.StringFlag{Name: "format", Usage: "report format: json, msgpack (default from the export file extension)"},
				),
				Action: func(c *cli.Context) error {
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					opts.Progress = !c.Bool("no-progress") && isTerminal(ui.Out)
					return detectCommand(opts, c.String("export"), c.String("format"), ui)
				},
			},
			{
				Name:  "summary",
				Usage: "print the corpus statistics and the top lemmas",
				Flags: append(runFlags(),
					&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text, json, msgpack"},
					&cli.StringFlag{Name: "out", Usage: "also write the text summary to this file"},
				),
				Action: func(c *cli.Context) error {
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					return summaryCommand(opts, c.String("format"), c.String("out"), ui)
				},
			},
			{
				Name:  "freq",
				Usage: "print the lemma frequencies of a label or lexicon",
				Flags: append(runFlags(),
					&cli.StringFlag{Name: "label", Usage: "label (lexicon name, both, triple) to print, all if empty"},
					&cli.BoolFlag{Name: "by-lexicon", Usage: "count every hit of a lexicon, regardless of its label"},
				),
				Action: func(c *cli.Context) error {
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					return freqCommand(opts, c.String("label"), c.Bool("by-lexicon"), ui)
				},
			},
			{
				Name:      "lemma",
				Usage:     "print the sentences with a lemma",
				ArgsUsage: "<lemma>",
				Flags: append(runFlags(),
					&cli.StringFlag{Name: "pos", Value: "VERB", Usage: "only tokens with this POS tag, every tag if empty"},
				),
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("lemma: expected one lemma, got %d arguments", c.NArg())
					}
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					return lemmaCommand(opts, c.Args().First(), c.String("pos"), ui)
				},
			},
			{
				Name:  "sentences",
				Usage: "print the sentences of a hit category",
				Flags: append(runFlags(),
					&cli.StringFlag{Name: "category", Required: true, Usage: "lexicon name, both, triple, any or none"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"m"}, Usage: "print at most this many sentences, all if 0"},
				),
				Action: func(c *cli.Context) error {
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					return sentencesCommand(opts, c.String("category"), c.Int("limit"), ui)
				},
			},
			{
				Name:  "lexicon",
				Usage: "list the active lexicons",
				Flags: append(runFlags(),
					&cli.BoolFlag{Name: "check", Usage: "validate every lexicon source of the lexicon directory"},
				),
				Action: func(c *cli.Context) error {
					opts, err := runOptions(c, cfg)
					if err != nil {
						return err
					}
					if c.Bool("check") {
						return lexiconCheckCommand(opts, ui)
					}
					return lexiconCommand(opts, ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

// runFlags are the flags of every command running the detection. They
// override the configuration file.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "lexicon-path",
			Aliases: []string{"l"},
			Usage:   "directory of the lexicon sources",
			EnvVars: []string{"LEXHIT_LEXICON_PATH"},
		},
		&cli.StringFlag{
			Name:    "results-path",
			Aliases: []string{"r"},
			Usage:   "directory of the annotator tables",
			EnvVars: []string{"LEXHIT_RESULTS_PATH"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "result directory or SQLite file (.db)",
			EnvVars: []string{"LEXHIT_OUTPUT"},
		},
		&cli.StringFlag{Name: "sentences", Usage: "sentence table, default <results-path>/sentences.csv"},
		&cli.StringFlag{Name: "tokens", Usage: "token table, default <results-path>/tokens.csv"},
		&cli.StringSliceFlag{Name: "require", Usage: "required lexicon, repeatable"},
		&cli.StringSliceFlag{Name: "optional", Usage: "optional lexicon, repeatable"},
		&cli.BoolFlag{Name: "discover", Usage: "use every lexicon of the lexicon directory"},
		&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "lemmas per frequency list, all if 0"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
	}
}

// runOptions applies the flags of a command to the configuration.
func runOptions(c *cli.Context, cfg config.Config) (RunOptions, error) {
	if c.IsSet("lexicon-path") {
		cfg.LexiconDir = c.String("lexicon-path")
	}
	if c.IsSet("results-path") {
		cfg.ResultsDir = c.String("results-path")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("sentences") {
		cfg.Sentences = c.String("sentences")
	}
	if c.IsSet("tokens") {
		cfg.Tokens = c.String("tokens")
	}
	if c.IsSet("require") {
		cfg.Required = c.StringSlice("require")
	}
	if c.IsSet("optional") {
		cfg.Optional = c.StringSlice("optional")
	}
	if c.IsSet("discover") {
		cfg.Discover = c.Bool("discover")
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}

	if err := cfg.Validate(); err != nil {
		return RunOptions{}, err
	}

	return RunOptions{Config: cfg, NoColor: c.Bool("no-color")}, nil
}
