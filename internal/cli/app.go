// Package cli implements the maskscore command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/maskscore"
	"github.com/hupe1980/maskscore/codec"
	"github.com/hupe1980/maskscore/internal/config"
	"github.com/hupe1980/maskscore/resource"
)

const envPrefix = "MASKSCORE_"

var (
	version = "v0.0.1-default"
	commit  = ""
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg      *config.Config
	logger   *maskscore.Logger
	metrics  *maskscore.BasicMetricsCollector
	registry *maskscore.Registry
}

func env(name string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + name)
}

// NewCommand creates the root command.
func NewCommand() *cli.Command {
	a := &app{}

	return &cli.Command{
		Name:    "maskscore",
		Usage:   "Measure how typical the structure of a password is",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Suggest: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				Sources: env("CONFIG"),
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Centroid table: a local path, or the object name with --s3-bucket/--minio-endpoint (default: bundled table)",
				Sources: env("SOURCE"),
			},
			&cli.StringFlag{
				Name:    "s3-bucket",
				Usage:   "Load the centroid table from this S3 bucket",
				Sources: env("S3_BUCKET"),
			},
			&cli.StringFlag{
				Name:    "s3-prefix",
				Usage:   "Key prefix inside the S3 bucket",
				Sources: env("S3_PREFIX"),
			},
			&cli.StringFlag{
				Name:    "s3-region",
				Usage:   "AWS region (default: from the AWS config chain)",
				Sources: env("S3_REGION"),
			},
			&cli.StringFlag{
				Name:    "ddb-table",
				Usage:   "DynamoDB table that publishes the active centroid table per dataset",
				Sources: env("DDB_TABLE"),
			},
			&cli.StringFlag{
				Name:    "dataset",
				Usage:   "Dataset to resolve in --ddb-table",
				Sources: env("DATASET"),
			},
			&cli.StringFlag{
				Name:    "minio-endpoint",
				Usage:   "Load the centroid table from this MinIO endpoint (host:port)",
				Sources: env("MINIO_ENDPOINT"),
			},
			&cli.StringFlag{
				Name:    "minio-bucket",
				Usage:   "MinIO bucket",
				Sources: env("MINIO_BUCKET"),
			},
			&cli.StringFlag{
				Name:    "minio-prefix",
				Usage:   "Key prefix inside the MinIO bucket",
				Sources: env("MINIO_PREFIX"),
			},
			&cli.StringFlag{
				Name:    "minio-access-key",
				Usage:   "MinIO access key",
				Sources: env("MINIO_ACCESS_KEY"),
			},
			&cli.StringFlag{
				Name:    "minio-secret-key",
				Usage:   "MinIO secret key",
				Sources: env("MINIO_SECRET_KEY"),
			},
			&cli.BoolFlag{
				Name:    "minio-secure",
				Usage:   "Use TLS for MinIO",
				Sources: env("MINIO_SECURE"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format [json, yaml]",
				Sources: env("FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level [debug, info, warn, error]",
				Sources: env("LOG_LEVEL"),
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.scoreCommand(),
			a.encodeCommand(),
			a.nearestCommand(),
			a.hashCommand(),
			a.centroidsCommand(),
		},
	}
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string) error {
	return NewCommand().Run(ctx, args)
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	overrideString(cmd, "source", &cfg.Source)
	overrideString(cmd, "s3-bucket", &cfg.S3.Bucket)
	overrideString(cmd, "s3-prefix", &cfg.S3.Prefix)
	overrideString(cmd, "s3-region", &cfg.S3.Region)
	overrideString(cmd, "ddb-table", &cfg.S3.Table)
	overrideString(cmd, "dataset", &cfg.S3.Dataset)
	overrideString(cmd, "minio-endpoint", &cfg.MinIO.Endpoint)
	overrideString(cmd, "minio-bucket", &cfg.MinIO.Bucket)
	overrideString(cmd, "minio-prefix", &cfg.MinIO.Prefix)
	overrideString(cmd, "minio-access-key", &cfg.MinIO.AccessKey)
	overrideString(cmd, "minio-secret-key", &cfg.MinIO.SecretKey)
	overrideString(cmd, "format", &cfg.Format)
	overrideString(cmd, "log-level", &cfg.LogLevel)
	if cmd.IsSet("minio-secure") {
		cfg.MinIO.Secure = cmd.Bool("minio-secure")
	}

	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	a.cfg = cfg
	a.logger = maskscore.NewLogger(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
		Level: ParseLogLevel(cfg.LogLevel),
	}))
	a.metrics = &maskscore.BasicMetricsCollector{}
	a.registry = maskscore.NewRegistry(
		maskscore.WithLogger(a.logger),
		maskscore.WithMetricsCollector(a.metrics),
		maskscore.WithResourceController(resource.NewController(resource.Config{
			MaxConcurrentLoads: cfg.Limits.MaxConcurrentLoads,
			IOLimitBytesPerSec: cfg.Limits.IOBytesPerSec,
		})),
	)

	return ctx, nil
}

func overrideString(cmd *cli.Command, name string, dst *string) {
	if cmd.IsSet(name) {
		*dst = cmd.String(name)
	}
}

// scorer returns the Scorer for the configured source, loading it once.
func (a *app) scorer(ctx context.Context) (*maskscore.Scorer, error) {
	src, err := resolveSource(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	return a.registry.FromSource(ctx, src)
}

func (a *app) encode(w io.Writer, v any) error {
	if a.cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	b, err := codec.GoJSON{}.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
