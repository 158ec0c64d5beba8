// Package screens builds the installer menus on top of the ui engine and runs
// the main event loop that dispatches selections to Operations.
package screens

// Event is what the main menu asks the installer to do.
type Event int

const (
	EventNone Event = iota
	EventInstall
	EventMultiInstall
	EventUninstall
	EventDowngradeMulti
	EventFormatMC
	EventDumpMC
	EventRestoreMC
	EventInstallFHDB
	EventUninstallFHDB
	EventCrossPSX
	EventFormatHDD
	EventOpenTuna
	EventExit
)

var eventNames = [...]string{
	"none", "install", "multi-install", "uninstall", "downgrade-multi",
	"format-mc", "dump-mc", "restore-mc", "install-fhdb", "uninstall-fhdb",
	"install-cross-psx", "format-hdd", "opentuna", "exit",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// needsCard reports whether the event operates on a memory card.
func (e Event) needsCard() bool {
	switch e {
	case EventInstall, EventMultiInstall, EventCrossPSX, EventUninstall,
		EventDowngradeMulti, EventFormatMC, EventDumpMC, EventRestoreMC:
		return true
	}
	return false
}

// needsHDD reports whether the event operates on the hard disk.
func (e Event) needsHDD() bool {
	switch e {
	case EventInstallFHDB, EventUninstallFHDB, EventFormatHDD:
		return true
	}
	return false
}
