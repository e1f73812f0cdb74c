package generator

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zusitools/fahrplangen/pkg/config"
	"github.com/zusitools/fahrplangen/pkg/zugnummer"
	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// GeneratedZug is a train together with its printed timetable, if it has one.
type GeneratedZug struct {
	Zug          *zusi.Zug
	Buchfahrplan *zusi.Buchfahrplan
}

func (z *GeneratedZug) Clone() (*GeneratedZug, error) {
	copied := &GeneratedZug{}

	zug, err := clone(z.Zug)
	if err != nil {
		return nil, err
	}
	copied.Zug = zug

	if z.Buchfahrplan != nil {
		bfp, err := clone(z.Buchfahrplan)
		if err != nil {
			return nil, err
		}
		copied.Buchfahrplan = bfp
	}

	return copied, nil
}

func (z *GeneratedZug) SetNummer(nummer string) {
	z.Zug.Nummer = nummer
	if z.Buchfahrplan != nil {
		z.Buchfahrplan.Nummer = nummer
	}
}

func (z *GeneratedZug) Shift(d time.Duration) {
	zusi.ShiftEintraege(z.Zug.FahrplanEintraege, d)
	if z.Buchfahrplan != nil {
		zusi.ShiftZeilen(z.Buchfahrplan.FplZeilen, d)
	}
}

// copyDelay creates the copies every task asks for. The n-th copy of a task
// has its number increased by n times the task increment and its times moved
// by n times the task delay.
func (g *Generator) copyDelay(copyDelay *config.CopyDelayConfig, seed *GeneratedZug) ([]*GeneratedZug, error) {
	var copies []*GeneratedZug

	for i, task := range copyDelay.Tasks {
		nummer, err := zugnummer.Parse(seed.Zug.Nummer)
		if err != nil {
			return nil, err
		}

		template := seed
		if task.RollingStock != nil {
			template, err = seed.Clone()
			if err != nil {
				return nil, err
			}
			if err := g.replaceRollingStock(task.RollingStock, template); err != nil {
				return nil, fmt.Errorf("copy delay task %d: %w", i+1, err)
			}
		}

		for n := 1; n <= int(task.Count); n++ {
			neueNummer, err := nummer.Increment(int64(n) * task.Increment)
			if err != nil {
				return nil, err
			}

			copied, err := template.Clone()
			if err != nil {
				return nil, err
			}
			copied.SetNummer(neueNummer.String())
			copied.Shift(time.Duration(n) * task.Delay.Std())

			copies = append(copies, copied)
		}

		log.Debug().
			Str("nummer", seed.Zug.Nummer).
			Uint("count", task.Count).
			Str("delay", task.Delay.String()).
			Int64("increment", task.Increment).
			Msg("Copied train")
	}

	return copies, nil
}
