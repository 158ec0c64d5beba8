package screens

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/backend"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/gfx"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/lang"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/pad"
	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/ui"
)

var errStop = errors.New("stop")

type fakeTask struct {
	progress backend.Progress
	err      error
	// finishAfter closes done once this many snapshots were taken.
	finishAfter int
	snapshots   int
	done        chan struct{}
	once        sync.Once
	stopped     bool
}

func newFakeTask(finished bool, err error) *fakeTask {
	t := &fakeTask{err: err, done: make(chan struct{})}
	if finished {
		close(t.done)
	}
	return t
}

func (t *fakeTask) Snapshot() backend.Progress {
	t.snapshots++
	if t.finishAfter > 0 && t.snapshots >= t.finishAfter {
		t.once.Do(func() { close(t.done) })
	}
	return t.progress
}

func (t *fakeTask) Done() <-chan struct{} { return t.done }

func (t *fakeTask) Stop() {
	t.stopped = true
	t.once.Do(func() { close(t.done) })
}

func (t *fakeTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

type tunaCall struct {
	action  TunaAction
	payload Payload
	slot    int
}

type fakeOps struct {
	caps     Capabilities
	cards    []Card
	required uint64
	rom      uint16
	task     *fakeTask
	started  []Event
	tuna     []tunaCall
}

func (o *fakeOps) Capabilities() Capabilities            { return o.caps }
func (o *fakeOps) Cards(context.Context) ([]Card, error) { return o.cards, nil }
func (o *fakeOps) Required(Event) uint64                 { return o.required }
func (o *fakeOps) ROMVersion() uint16                    { return o.rom }
func (o *fakeOps) Start(_ context.Context, ev Event, slot int) (Task, error) {
	o.started = append(o.started, ev)
	if o.task == nil {
		o.task = newFakeTask(true, nil)
	}
	return o.task, nil
}

func (o *fakeOps) OpenTuna(_ context.Context, action TunaAction, payload Payload, slot int) error {
	o.tuna = append(o.tuna, tunaCall{action, payload, slot})
	return nil
}

func newTestInstaller(t *testing.T, ops *fakeOps, frames ...pad.Buttons) (*Installer, *gfx.Recorder) {
	t.Helper()
	rec := gfx.NewRecorder(ui.ScreenWidth, ui.ScreenHeight)
	rec.OnFlip = func(n int) error {
		if n >= 4000 {
			return errStop
		}
		return nil
	}
	u, err := ui.New(ui.Options{Backend: rec, Pad: pad.NewScript(frames...), Version: "v1.0"})
	if err != nil {
		t.Fatalf("new ui: %v", err)
	}
	in, err := NewInstaller(u, ops, "v1.0")
	if err != nil {
		t.Fatalf("new installer: %v", err)
	}
	return in, rec
}

func oneCard() []Card { return []Card{{Slot: 0, Free: 8 << 20}} }

func TestMenusAreChained(t *testing.T) {
	reg := menu.NewRegistry()
	ms, err := NewMenus(reg, "v1.0", Capabilities{PS2: true})
	if err != nil {
		t.Fatalf("new menus: %v", err)
	}
	if ms.MC.Prev != "" || ms.MC.Next != ExtrasMenuID || ms.Extras.Prev != MCMenuID ||
		ms.Extras.Next != MainMenuID || ms.Main.Prev != ExtrasMenuID || ms.Main.Next != "" {
		t.Fatalf("unexpected links: mc=%q/%q extras=%q/%q main=%q/%q",
			ms.MC.Prev, ms.MC.Next, ms.Extras.Prev, ms.Extras.Next, ms.Main.Prev, ms.Main.Next)
	}
	if !reflect.DeepEqual(reg.IDs(), []string{MCMenuID, ExtrasMenuID, MainMenuID}) {
		t.Fatalf("unexpected registry %v", reg.IDs())
	}
	for _, m := range []*menu.Menu{ms.Main, ms.Extras, ms.MC} {
		it, ok := m.Item(idVersion)
		if !ok || it.Payload.(*menu.StringPayload).Text != "v1.0" {
			t.Fatalf("expected version string on %s", m.ID)
		}
		if m.Hints[1].Label != lang.LblExit {
			t.Fatalf("expected exit hint on %s", m.ID)
		}
	}
}

func TestCapabilitiesGateButtons(t *testing.T) {
	ms, err := NewMenus(menu.NewRegistry(), "v1.0", Capabilities{PS2: true})
	if err != nil {
		t.Fatalf("new menus: %v", err)
	}
	disabled := func(m *menu.Menu, id uint8) bool {
		it, _ := m.Item(id)
		return it.Has(menu.Disabled)
	}
	if !disabled(ms.Main, idMultiInstall) || disabled(ms.Extras, idCrossPSX) || !disabled(ms.Extras, idFormatHDD) {
		t.Fatalf("unexpected enabled state")
	}
	ms.Apply(Capabilities{HDD: true, MultiInstall: true})
	if !disabled(ms.Main, idMultiInstall) || !disabled(ms.Extras, idCrossPSX) || disabled(ms.Extras, idInstallFHDB) {
		t.Fatalf("expected PSX units to lose PS2-only buttons and gain HDD ones")
	}
}

func TestEventFor(t *testing.T) {
	cases := map[int]Event{
		ui.CancelResult:    EventExit,
		int(idExit):        EventExit,
		int(idFormatHDD):   EventFormatHDD,
		int(idOpenTuna):    EventOpenTuna,
		int(idDescription): EventNone,
		300:                EventNone,
	}
	for r, want := range cases {
		if got := eventFor(r); got != want {
			t.Fatalf("eventFor(%d) = %s, want %s", r, got, want)
		}
	}
}

func TestDescriptionFollowsFocus(t *testing.T) {
	ms, _ := NewMenus(menu.NewRegistry(), "v1.0", Capabilities{PS2: true})
	var focus uint8
	cb := describe(&focus)
	m := ms.Main
	idx := -1
	for i := range m.Items {
		if m.Items[i].ID == idUninstall && m.Items[i].Type == menu.Button {
			idx = i
		}
	}
	desc := func() *menu.StringPayload {
		it, _ := m.Item(idDescription)
		return it.Payload.(*menu.StringPayload)
	}

	if r := cb(m, 0, idx, 0); r != 0 {
		t.Fatalf("expected callback to keep running, got %d", r)
	}
	if p := desc(); !p.FromMsg || p.Message != lang.MsgDescUninstall || focus != idUninstall {
		t.Fatalf("unexpected description %+v focus %d", p, focus)
	}
	m.SetString(idDescription, "stale")
	cb(m, 5, idx, 0)
	if desc().Text != "stale" {
		t.Fatalf("expected idle frames to leave the description alone")
	}
	cb(m, 6, -1, pad.Down)
	if p := desc(); p.FromMsg || p.Text != "" {
		t.Fatalf("expected an empty description without focus, got %+v", p)
	}
}

func TestProcessSpaceValue(t *testing.T) {
	cases := []struct {
		in   uint64
		v    uint64
		unit lang.LabelID
	}{
		{512, 512, lang.LblB},
		{2048, 2, lang.LblKB},
		{3 << 20, 3, lang.LblMB},
		{5 << 30, 5, lang.LblGB},
		{3 << 40, 3, lang.LblTB},
		{5 << 50, 5120, lang.LblTB},
	}
	for _, tc := range cases {
		v, unit := ProcessSpaceValue(tc.in)
		if v != tc.v || unit != tc.unit {
			t.Fatalf("ProcessSpaceValue(%d) = %d %d, want %d %d", tc.in, v, unit, tc.v, tc.unit)
		}
	}
}

func TestProgressScreenDetail(t *testing.T) {
	p := NewProgressScreen()
	if err := p.Init(lang.LblInstalling); err != nil {
		t.Fatalf("init: %v", err)
	}
	it, _ := p.Menu().Item(prgRate)
	if p.Detailed() || !it.Has(menu.Hidden) || p.Menu().Hints[0].Glyph != menu.GlyphNone {
		t.Fatalf("expected a plain progress screen for installs")
	}
	if err := p.Update(backend.Progress{Done: 50, Total: 100}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Menu().Value(prgBar) != 50 {
		t.Fatalf("expected bar at 50, got %d", p.Menu().Value(prgBar))
	}

	if err := p.Init(lang.LblDumpingMC); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !p.Detailed() || p.Menu().Hints[0].Glyph != menu.GlyphCancel {
		t.Fatalf("expected a cancellable detailed screen")
	}
	for i := range p.Menu().Items {
		if it := p.Menu().Items[i]; it.Type == menu.Colon && it.Has(menu.Hidden) {
			t.Fatalf("expected ETA separators to be visible")
		}
	}
}

func TestProgressScreenETASwitchesType(t *testing.T) {
	p := NewProgressScreen()
	if err := p.Init(lang.LblRestoringMC); err != nil {
		t.Fatalf("init: %v", err)
	}
	m := p.Menu()
	if err := p.Update(backend.Progress{Total: 1 << 20}); err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, id := range etaFields {
		it, _ := m.Item(id)
		if it.Type != menu.String || it.Payload.(*menu.StringPayload).Text != unknownETA {
			t.Fatalf("expected item %d to show %q, got %s", id, unknownETA, it.Type)
		}
	}

	// 1 MiB of 8 MiB after 1s at 1 MiB/s leaves 7s
	if err := p.Update(backend.Progress{Done: 1 << 20, Total: 8 << 20, Elapsed: time.Second}); err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, id := range etaFields {
		if it, _ := m.Item(id); it.Type != menu.Value {
			t.Fatalf("expected item %d back as a value, got %s", id, it.Type)
		}
	}
	if m.Value(prgHours) != 0 || m.Value(prgMins) != 0 || m.Value(prgSecs) != 7 || m.Value(prgRate) != 1024 {
		t.Fatalf("unexpected eta %d:%d:%d rate %d", m.Value(prgHours), m.Value(prgMins), m.Value(prgSecs), m.Value(prgRate))
	}

	if err := p.Update(backend.Progress{Done: 1, Total: 1 << 30, Elapsed: 2 * time.Hour}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if it, _ := m.Item(prgHours); it.Type != menu.String {
		t.Fatalf("expected a zero rate to hide the eta again")
	}
}

func TestPayloadForROM(t *testing.T) {
	cases := map[uint16]Payload{
		0:     PayloadUnsupported,
		0x100: PayloadUnsupported,
		0x110: PayloadFats,
		0x160: PayloadFats,
		0x170: PayloadFat170,
		0x180: PayloadFats,
		0x190: PayloadSlims,
		0x230: PayloadSlims,
	}
	for rom, want := range cases {
		if got := PayloadForROM(rom); got != want {
			t.Fatalf("PayloadForROM(%#x) = %s, want %s", rom, got, want)
		}
	}
	if PayloadFat170.File() != "OpenTuna_FAT-170.bin" || PayloadUnsupported.File() != "" {
		t.Fatalf("unexpected payload files")
	}
}

func TestRunQuitsAfterConfirmation(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}, cards: oneCard()}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Circle, pad.Down, pad.Cross)...)
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(ops.started) != 0 {
		t.Fatalf("expected no operations, got %v", ops.started)
	}
}

func TestRunDeclinedQuitReturnsToMenu(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}}
	// decline once, then confirm
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Circle, pad.Cross, pad.Circle, pad.Down, pad.Cross)...)
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestFormatFromMemoryCardMenu(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}, cards: oneCard()}
	in, _ := newTestInstaller(t, ops, pad.Taps(
		pad.L1, pad.L1, pad.Cross, // page to the memory card menu and pick format
		pad.Down, pad.Cross, // confirm
		pad.Cross,                      // dismiss the completion notice
		pad.Circle, pad.Down, pad.Cross, // quit
	)...)
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reflect.DeepEqual(ops.started, []Event{EventFormatMC}) {
		t.Fatalf("expected a format, got %v", ops.started)
	}
	if got := in.Bus().History(); !reflect.DeepEqual(got, []string{"format-mc"}) {
		t.Fatalf("unexpected bus history %v", got)
	}
}

func TestInstallStopsOnInsufficientSpace(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}, cards: []Card{{Slot: 0, Free: 1024}}, required: 4096}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Down, pad.Cross, pad.Cross)...)
	if err := in.handle(context.Background(), EventInstall); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(ops.started) != 0 {
		t.Fatalf("expected the install not to start")
	}
	m := in.space.Menu()
	unit := func(id uint8) lang.LabelID {
		it, _ := m.Item(id)
		return it.Payload.(*menu.LabelPayload).Label
	}
	if m.Value(spcAvailable) != 1 || unit(spcAvailableUnit) != lang.LblKB ||
		m.Value(spcRequired) != 4 || unit(spcRequiredUnit) != lang.LblKB {
		t.Fatalf("unexpected space screen values")
	}
}

func TestNoCardShowsError(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}}
	in, _ := newTestInstaller(t, ops, pad.Cross)
	if err := in.handle(context.Background(), EventDumpMC); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(ops.started) != 0 {
		t.Fatalf("expected nothing to start without a card")
	}
}

func TestPickCardAsksForSlot(t *testing.T) {
	ops := &fakeOps{cards: []Card{{Slot: 0}, {Slot: 1, Free: 99}}}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Down, pad.Cross)...)
	card, err := in.pickCard(context.Background())
	if err != nil || card == nil || card.Slot != 1 || card.Free != 99 {
		t.Fatalf("expected slot 2, got %+v (%v)", card, err)
	}
}

func TestHDDOperationsNeedHDD(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}}
	in, _ := newTestInstaller(t, ops, pad.Cross)
	if err := in.handle(context.Background(), EventFormatHDD); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(ops.started) != 0 {
		t.Fatalf("expected no format without an HDD")
	}
}

func TestDumpCanBeCancelled(t *testing.T) {
	task := newFakeTask(false, nil)
	task.progress = backend.Progress{Done: 10, Total: 100, Elapsed: time.Second}
	ops := &fakeOps{cards: oneCard(), task: task}
	frames := append([]pad.Buttons{0}, pad.Taps(pad.Circle, pad.Down, pad.Cross)...)
	in, _ := newTestInstaller(t, ops, frames...)
	err := in.runTask(context.Background(), outcomes[EventDumpMC], task)
	if !errors.Is(err, errCancelled) || !task.stopped {
		t.Fatalf("expected a stopped task, got %v stopped=%v", err, task.stopped)
	}
	if in.progress.Menu().Value(prgBar) != 10 {
		t.Fatalf("expected the bar to track the task")
	}
}

func TestInstallIgnoresCancel(t *testing.T) {
	task := newFakeTask(false, nil)
	task.finishAfter = 6
	in, _ := newTestInstaller(t, &fakeOps{}, pad.Taps(pad.Circle, pad.Circle)...)
	if err := in.runTask(context.Background(), outcomes[EventInstall], task); err != nil {
		t.Fatalf("expected the install to run to completion, got %v", err)
	}
}

func TestFailedTaskShowsError(t *testing.T) {
	ops := &fakeOps{caps: Capabilities{PS2: true}, cards: oneCard(), task: newFakeTask(true, errors.New("write error"))}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Down, pad.Cross, pad.Cross)...)
	if err := in.handle(context.Background(), EventUninstall); err != nil {
		t.Fatalf("expected the failure to be shown, not returned: %v", err)
	}
}

func TestOpenTunaAuto(t *testing.T) {
	ops := &fakeOps{cards: oneCard(), rom: 0x170}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Cross, pad.Cross, pad.Circle)...)
	if err := in.OpenTuna(context.Background()); err != nil {
		t.Fatalf("opentuna: %v", err)
	}
	if !reflect.DeepEqual(ops.tuna, []tunaCall{{TunaInstall, PayloadFat170, 0}}) {
		t.Fatalf("unexpected calls %v", ops.tuna)
	}
}

func TestOpenTunaAutoUnsupportedROM(t *testing.T) {
	ops := &fakeOps{cards: oneCard(), rom: 0x100}
	in, _ := newTestInstaller(t, ops, pad.Taps(pad.Cross, pad.Cross, pad.Circle)...)
	if err := in.OpenTuna(context.Background()); err != nil {
		t.Fatalf("opentuna: %v", err)
	}
	if len(ops.tuna) != 0 {
		t.Fatalf("expected no install on an unsupported ROM")
	}
}

func TestOpenTunaManualUsesChosenPayload(t *testing.T) {
	ops := &fakeOps{cards: oneCard(), rom: 0x230}
	in, _ := newTestInstaller(t, ops, pad.Taps(
		pad.Down, pad.Down, pad.Right, // focus the payload enum and pick fats
		pad.Up, pad.Cross, // manual install
		pad.Down, pad.Cross, // confirm
		pad.Cross,  // dismiss the notice
		pad.Circle, // leave
	)...)
	if err := in.OpenTuna(context.Background()); err != nil {
		t.Fatalf("opentuna: %v", err)
	}
	if !reflect.DeepEqual(ops.tuna, []tunaCall{{TunaInstall, PayloadFats, 0}}) {
		t.Fatalf("unexpected calls %v", ops.tuna)
	}
	if got := in.Bus().History(); !reflect.DeepEqual(got, []string{"opentuna-manual"}) {
		t.Fatalf("unexpected history %v", got)
	}
}
