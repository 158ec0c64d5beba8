package app

import (
	"context"
	"time"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/backend"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/screens"
)

const (
	cardSize    = 8 << 20
	demoTick    = 20 * time.Millisecond
	demoRate    = 512 << 10
	demoROM     = 0x0220
	tunaLatency = 400 * time.Millisecond
)

// jobSizes is how many bytes each simulated operation moves.
var jobSizes = map[screens.Event]uint64{
	screens.EventInstall:        3_500_000,
	screens.EventMultiInstall:   5_200_000,
	screens.EventUninstall:      400_000,
	screens.EventDowngradeMulti: 1_100_000,
	screens.EventFormatMC:       cardSize,
	screens.EventDumpMC:         cardSize,
	screens.EventRestoreMC:      cardSize,
	screens.EventInstallFHDB:    6_000_000,
	screens.EventUninstallFHDB:  300_000,
	screens.EventCrossPSX:       3_800_000,
	screens.EventFormatHDD:      2_000_000,
}

// required is the free space an operation needs on the card; dumps only read.
var required = map[screens.Event]uint64{
	screens.EventInstall:        3_500_000,
	screens.EventMultiInstall:   5_200_000,
	screens.EventDowngradeMulti: 1_100_000,
	screens.EventCrossPSX:       3_800_000,
	screens.EventRestoreMC:      cardSize,
}

// demoOps simulates the console: one card in slot 1, no hard disk, and jobs
// that advance at a fixed byte rate.
type demoOps struct {
	caps  screens.Capabilities
	cards []screens.Card
	rate  uint64
	tick  time.Duration
}

func newDemoOps() *demoOps {
	return &demoOps{
		caps:  screens.Capabilities{PS2: true, MultiInstall: true},
		cards: []screens.Card{{Slot: 0, Free: 7_600_000}},
		rate:  demoRate,
		tick:  demoTick,
	}
}

func (d *demoOps) Capabilities() screens.Capabilities { return d.caps }
func (d *demoOps) Required(ev screens.Event) uint64  { return required[ev] }
func (d *demoOps) ROMVersion() uint16                 { return demoROM }

func (d *demoOps) Cards(ctx context.Context) ([]screens.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]screens.Card(nil), d.cards...), nil
}

func (d *demoOps) Start(ctx context.Context, ev screens.Event, _ int) (screens.Task, error) {
	total := jobSizes[ev]
	return backend.Start(ctx, ev.String(), total, d.copyJob(total)), nil
}

// copyJob advances the counter by one tick's worth of bytes per tick.
func (d *demoOps) copyJob(total uint64) backend.Job {
	return func(ctx context.Context, report backend.Reporter) error {
		chunk := d.rate * uint64(d.tick) / uint64(time.Second)
		if chunk == 0 {
			chunk = 1
		}
		ticker := time.NewTicker(d.tick)
		defer ticker.Stop()
		var done uint64
		for done < total {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			n := min(chunk, total-done)
			report.Add(n)
			done += n
		}
		return nil
	}
}

func (d *demoOps) OpenTuna(ctx context.Context, _ screens.TunaAction, _ screens.Payload, _ int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(tunaLatency):
		return nil
	}
}
