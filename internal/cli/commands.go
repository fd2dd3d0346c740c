package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/maskscore"
	"github.com/hupe1980/maskscore/centroid"
	"github.com/hupe1980/maskscore/mask"
)

type scoreResult struct {
	Password string  `json:"password,omitempty" yaml:"password,omitempty"`
	Mask     string  `json:"mask" yaml:"mask"`
	Distance float64 `json:"distance" yaml:"distance"`
}

type encodeResult struct {
	Mask  string `json:"mask" yaml:"mask"`
	Codes []int  `json:"codes" yaml:"codes"`
}

type nearestResult struct {
	Mask    string           `json:"mask" yaml:"mask"`
	Matches []centroid.Match `json:"matches" yaml:"matches"`
}

type centroidsResult struct {
	Source string `json:"source" yaml:"source"`
	Rows   int    `json:"rows" yaml:"rows"`
	Width  int    `json:"width" yaml:"width"`
}

func (a *app) scoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Score passwords (arguments, or one per line on stdin)",
		ArgsUsage: "[password...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "Include the password in the output",
			},
		},
		Action: a.cmdScore,
	}
}

func (a *app) cmdScore(ctx context.Context, cmd *cli.Command) error {
	passwords := cmd.Args().Slice()
	if len(passwords) == 0 {
		var err error
		if passwords, err = readLines(cmd.Root().Reader); err != nil {
			return fmt.Errorf("reading passwords: %w", err)
		}
	}

	s, err := a.scorer(ctx)
	if err != nil {
		return err
	}

	workers := a.cfg.Limits.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	echo := cmd.Bool("echo")
	results := make([]scoreResult, len(passwords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pw := range passwords {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v := mask.Encode(pw)
			results[i] = scoreResult{Mask: v.String(), Distance: s.ScoreVector(v)}
			if echo {
				results[i].Password = pw
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats := a.metrics.GetStats()
	a.logger.DebugContext(ctx, "scoring completed",
		"count", stats.ScoreCount,
		"avg_ns", stats.ScoreAvgNanos,
		"workers", workers,
	)

	return a.encode(cmd.Root().Writer, results)
}

func (a *app) encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Print the character-class mask of a password",
		ArgsUsage: "<password>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pw, err := singleArg(cmd)
			if err != nil {
				return err
			}
			v := mask.Encode(pw)
			return a.encode(cmd.Root().Writer, encodeResult{Mask: v.String(), Codes: v.Ints()})
		},
	}
}

func (a *app) nearestCommand() *cli.Command {
	return &cli.Command{
		Name:      "nearest",
		Usage:     "List the centroids closest to a password",
		ArgsUsage: "<password>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "Number of centroids",
				Value: 5,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pw, err := singleArg(cmd)
			if err != nil {
				return err
			}
			s, err := a.scorer(ctx)
			if err != nil {
				return err
			}
			return a.encode(cmd.Root().Writer, nearestResult{
				Mask:    mask.Encode(pw).String(),
				Matches: s.Nearest(pw, int(cmd.Int("n"))),
			})
		},
	}
}

func (a *app) hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the MD5 digest of the input",
		ArgsUsage: "<input>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err := singleArg(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, maskscore.HashMD5(in))
			return err
		},
	}
}

func (a *app) centroidsCommand() *cli.Command {
	return &cli.Command{
		Name:  "centroids",
		Usage: "Load the configured centroid table and print a summary",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.scorer(ctx)
			if err != nil {
				return err
			}
			return a.encode(cmd.Root().Writer, centroidsResult{
				Source: s.Source().Key(),
				Rows:   s.Len(),
				Width:  mask.Width,
			})
		},
	}
}

func singleArg(cmd *cli.Command) (string, error) {
	if cmd.NArg() != 1 {
		return "", errors.New("exactly one argument required")
	}
	return cmd.Args().First(), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
