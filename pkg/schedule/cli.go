package schedule

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Apply schedules to train files or extract them",
		Subcommands: []*cli.Command{
			{
				Name:  "apply",
				Usage: "Retime train files according to a schedule",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "schedule",
						Usage:    "Schedule file (.xml or .csv)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "trn-files",
						Usage:    "Train files to retime in place; further paths may follow as arguments",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail a file when the schedule does not align completely",
					},
				},
				Action: func(c *cli.Context) error {
					schedule, err := ReadFile(c.String("schedule"))
					if err != nil {
						return err
					}

					paths := append(c.StringSlice("trn-files"), c.Args().Slice()...)
					failed := 0
					for _, path := range paths {
						if err := ApplyToFile(path, schedule, c.Bool("strict")); err != nil {
							failed++
							log.Error().Err(err).Str("path", path).Msg("Failed to apply schedule")
							continue
						}
						log.Info().Str("path", path).Msg("Applied schedule")
					}

					if failed > 0 {
						log.Warn().Int("failed", failed).Int("total", len(paths)).Msg("Some train files were not updated")
					}
					return nil
				},
			},
			{
				Name:  "generate",
				Usage: "Extract the schedule a train file follows",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "trn",
						Usage:    "Train file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "schedule",
						Usage:    "Schedule file to write (.xml or .csv)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "First station of the extracted window",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "Last station of the extracted window",
					},
				},
				Action: func(c *cli.Context) error {
					zug, err := zusi.ReadZug(c.String("trn"))
					if err != nil {
						return err
					}

					schedule := GenerateWindow(zug.FahrplanEintraege, c.String("from"), c.String("to"))
					if err := WriteFile(c.String("schedule"), schedule); err != nil {
						return err
					}

					log.Info().
						Str("path", c.String("schedule")).
						Int("entries", len(schedule.Entries)).
						Msg("Wrote schedule")
					return nil
				},
			},
		},
	}
}

// ApplyToFile applies schedule to the train file at path and writes it back.
func ApplyToFile(path string, schedule *Schedule, strict bool) error {
	zug, err := zusi.ReadZug(path)
	if err != nil {
		return err
	}

	alignment, err := Apply(zug.FahrplanEintraege, schedule)
	if err != nil {
		return err
	}
	if strict && !alignment.Complete(schedule) {
		return fmt.Errorf("%w: %d of %d entries matched", ErrNotAligned, alignment.Length, len(schedule.Entries))
	}

	return zusi.WriteZug(path, zug)
}
