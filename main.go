package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"ghfile/config"
	"ghfile/gh"
	"ghfile/helpers"
	"ghfile/logger"
)

var version = "0.1.0"

const (
	urlPrompt   = "Enter the complete GitHub URL of the file:"
	tokenPrompt = "Enter your GitHub personal access token:"
)

func main() {
	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, helpers.ErrorLine(err))
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ghfile",
		Usage:     "Print the GitHub Contents API response for a file blob URL",
		UsageText: "ghfile [-u URL] [-t TOKEN]",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "complete GitHub URL of the file (prompted for when omitted)",
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token (prompted for when omitted)",
			},
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "load settings from `FILE` (yaml, json or toml)",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar on stderr while the response is read",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "print the JSON response on a single line",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.Bool("progress") {
		cfg.Progress = true
	}
	if cmd.Bool("compact") {
		cfg.Indent = ""
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrWriter)
	if err != nil {
		return err
	}
	defer log.Sync()

	in := bufio.NewReader(cmd.Reader)
	rawURL, err := helpers.ResolveInput(cmd.String("url"), urlPrompt, in, cmd.ErrWriter)
	if err != nil {
		return err
	}
	token, err := helpers.ResolveInput(cmd.String("token"), tokenPrompt, in, cmd.ErrWriter)
	if err != nil {
		return err
	}

	ref, err := helpers.ParseBlobURL(rawURL)
	if err != nil {
		return err
	}

	opts := []gh.Option{gh.WithBaseURL(cfg.APIBaseURL), gh.WithLogger(log)}
	if cfg.Progress {
		opts = append(opts, gh.WithProgress(cmd.ErrWriter))
	}

	value, err := gh.NewClient(opts...).FetchContents(ctx, ref, token)
	if err != nil {
		return err
	}

	return helpers.PrintJSON(cmd.Writer, value, cfg.Indent)
}
