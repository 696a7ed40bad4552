// Binary lbrexport extracts a MinerVGA sprite library into files usable
// by modern tooling: one PNG per sprite, a composited sprite sheet, and
// a plain text catalog.
package main

import (
	"log"
	"os"

	"badc0de.net/pkg/go-minervga/compositor"

	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func scaleFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "scale",
		Value: 4,
		Usage: "integer scale factor for rendered sprites",
	}
}

func origFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "orig",
		Usage: "also write unscaled copies under a 1x/ subdirectory",
	}
}

func perRowFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "per-row",
		Value: compositor.DefaultPerRow,
		Usage: "sprites per sheet row",
	}
}

func padFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "pad",
		Value: compositor.DefaultPadding,
		Usage: "padding between sheet cells, in pixels",
	}
}

func gifFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "gif",
		Usage: "also write the sheet as a GIF",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "lbrexport"
	app.Usage = "MinerVGA sprite library export utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			EnvVars: []string{"LBREXPORT_OUT"},
			Value:   "minervga_sprites",
			Usage:   "output directory",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "sprites",
			Usage:     "Export each sprite as a PNG",
			ArgsUsage: "MINERVGA.LBR",
			Flags:     []cli.Flag{scaleFlag(), origFlag()},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.sprites(c.Int("scale"), c.Bool("orig")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "sheet",
			Usage:     "Export a composited sprite sheet",
			ArgsUsage: "MINERVGA.LBR",
			Flags:     []cli.Flag{scaleFlag(), perRowFlag(), padFlag(), gifFlag()},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.sheet(c.Int("scale"), c.Int("per-row"), c.Int("pad"), c.Bool("gif")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "catalog",
			Usage:     "Export a plain text catalog of the library",
			ArgsUsage: "MINERVGA.LBR",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.catalogFile(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "all",
			Usage:     "Export sprites, sheet and catalog in one go",
			ArgsUsage: "MINERVGA.LBR",
			Flags:     []cli.Flag{scaleFlag(), origFlag(), perRowFlag(), padFlag(), gifFlag()},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.sprites(c.Int("scale"), c.Bool("orig")); err != nil {
					return cli.NewExitError(err, 1)
				}
				if err := e.sheet(c.Int("scale"), c.Int("per-row"), c.Int("pad"), c.Bool("gif")); err != nil {
					return cli.NewExitError(err, 1)
				}
				if err := e.catalogFile(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
