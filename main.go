package main

import (
	"fmt"
	"log"
	"os"

	"github.com/adaora/newswire/internal/demoserver"
	"github.com/adaora/newswire/internal/fetch"
	"github.com/adaora/newswire/internal/history"
	"github.com/urfave/cli/v2"
)

var version = "0.3.0"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	fetchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "base URL of the article feed API",
		},
		&cli.StringFlag{
			Name:  "ids",
			Usage: "comma-separated article ids to fetch (default: whole feed)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "output format: json or yaml",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of concurrent article fetchers",
		},
		&cli.StringFlag{
			Name:  "timeout",
			Usage: "per-request timeout (e.g. 10s)",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Value: "15m",
			Usage: "serve cached responses younger than this",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "bypass the response cache",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "path to the optional config file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}

	return &cli.App{
		Name:    "newswire",
		Usage:   "fetch an article feed, map it into display records and print them",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "fetch",
				Usage:  "run the pipeline once",
				Flags:  fetchFlags,
				Action: fetch.FetchAction,
			},
			{
				Name:  "watch",
				Usage: "run the pipeline repeatedly until interrupted",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "delay",
						Aliases: []string{"d"},
						Value:   300,
						Usage:   "seconds to wait between updates",
					},
				}, fetchFlags...),
				Action: fetch.WatchAction,
			},
			{
				Name:  "history",
				Usage: "inspect previously fetched articles and runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 50,
						Usage: "maximum rows to show",
					},
				},
				Action: history.ArticlesAction,
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "list past pipeline runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum rows to show",
							},
						},
						Action: history.RunsAction,
					},
				},
			},
			{
				Name:  "demo-server",
				Usage: "serve a local fixture feed for offline use",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Value: 8080,
						Usage: "port to listen on",
					},
				},
				Action: demoserver.Action,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					fmt.Println(version)
					return nil
				},
			},
		},
		// Bare invocation runs the pipeline with built-in defaults.
		Flags:  fetchFlags,
		Action: fetch.FetchAction,
	}
}
