package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"topic-indexer/internal/config"
	"topic-indexer/internal/enrich"
	"topic-indexer/internal/logging"
	"topic-indexer/internal/translate"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	cfg   *config.Config
	log   *zap.Logger
	runID string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "topic-indexer",
		Short: "Render translated subject topics from bibliographic records",
		Long: `topic-indexer assembles subject chains from the fields of bibliographic
records, translates them and emits the configured output fields.

Configuration is read from the file given by --config and overridden by
TOPIC_INDEXER_* environment variables, which may be placed in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.loadEnv()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to the YAML configuration")
	flags.StringVar(&a.envFile, "env-file", "", "environment file to load (default .env when present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newIndexCmd(a),
		newChainsCmd(a),
		newSeparatorsCmd(),
		newCheckCmd(a),
	)

	return root
}

// loadEnv loads the environment file. A missing default .env is ignored.
func (a *app) loadEnv() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("failed to load environment file %s: %w", a.envFile, err)
		}

		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return nil
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	log, level, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	if a.verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = log.With(zap.String("run_id", a.runID))

	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("source_language", cfg.SourceLanguage),
		zap.Strings("languages", cfg.Languages),
		zap.Int("outputs", len(cfg.Outputs)))

	return nil
}

// engine loads the dictionaries and builds an engine.
func (a *app) engine(ctx context.Context) (*enrich.Engine, error) {
	dicts, err := loadDictionaries(ctx, a.cfg)
	if err != nil {
		return nil, err
	}

	for lang, d := range dicts {
		a.log.Debug("dictionary loaded", zap.String("lang", lang), zap.Int("terms", d.Len()))
	}

	tr := translate.NewTranslator(a.cfg.SourceLanguage, dicts)

	return enrich.New(tr, enrich.Options{CacheCapacity: a.cfg.CacheCapacity}, a.log), nil
}

func loadDictionaries(ctx context.Context, cfg *config.Config) (map[string]*translate.Dictionary, error) {
	switch {
	case cfg.Dictionary.SQLite != "":
		return translate.LoadSQLite(ctx, cfg.Dictionary.SQLite, cfg.Languages)
	case cfg.Dictionary.Dir != "":
		return translate.LoadDir(cfg.Dictionary.Dir, cfg.Languages)
	default:
		dicts := make(map[string]*translate.Dictionary, len(cfg.Languages))
		for _, lang := range cfg.Languages {
			dicts[lang] = translate.NewDictionary(nil)
		}

		return dicts, nil
	}
}
