package generator

import (
	"github.com/urfave/cli/v2"
	"github.com/zusitools/fahrplangen/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "generate-fahrplan",
		Usage: "Generate a timetable with all its trains from a configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    "Configuration file (.xml, .yaml or .yml)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			g, err := New(cfg)
			if err != nil {
				return err
			}

			return g.Generate()
		},
	}
}
