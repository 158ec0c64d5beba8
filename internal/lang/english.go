package lang

var englishMessages = [MsgCount]string{
	MsgDescInstall:         "Install FreeMcBoot for this specific PS2 console.",
	MsgDescMultiInstall:    "Install FreeMcBoot (Multi-Install) compatible with all PS2s of the same region.",
	MsgDescUninstall:       "Uninstall FreeMcBoot from the selected Memory Card.",
	MsgDescDowngradeMulti:  "Convert a Multi-Installation to a normal installation for this PS2.",
	MsgDescFormatMC:        "Format the selected Memory Card. All data will be lost!",
	MsgDescDumpMC:          "Create a backup image of the Memory Card to a USB device.",
	MsgDescRestoreMC:       "Restore a Memory Card image from a USB device.",
	MsgDescInstallCrossPSX: "Install FreeMcBoot for PSX (DESR) consoles.",
	MsgDescInstallFHDB:     "Install FreeMcBoot to the Harddisk Drive.",
	MsgDescUninstallFHDB:   "Uninstall FreeMcBoot from the Harddisk Drive.",
	MsgDescFormatHDD:       "Format the Harddisk Drive. All data will be lost!",
	MsgDescOpenTuna:        "Install the OpenTuna exploit for Memory Card booting.",
	MsgDescQuit:            "Exit the FreeMcBoot Installer application.",
	MsgPromptContinue:      "Do you want to continue?",
	MsgInstallCompleted:    "Installation completed successfully.",
	MsgInstallFailed:       "Installation failed.",
	MsgCleanupCompleted:    "Cleanup completed successfully.",
	MsgCleanupFailed:       "Cleanup failed.",
	MsgFormatCompleted:     "Format completed successfully.",
	MsgFormatFailed:        "Format failed.",
	MsgDumpCompleted:       "Memory Card dump completed.",
	MsgDumpFailed:          "Memory Card dump failed.",
	MsgRestoreCompleted:    "Memory Card restore completed.",
	MsgRestoreFailed:       "Memory Card restore failed.",
	MsgNoMC:                "No PlayStation 2 Memory Card detected.",
	MsgNoSpace:             "Insufficient free space on Memory Card.",
	MsgNoHDD:               "No Harddisk Drive (HDD) unit detected or unit is not ready.",
	MsgPleaseWait:          "Please wait...",
	MsgQuitDumping:         "Stop dumping Memory Card?",
	MsgQuitRestoring:       "Stop restoring Memory Card?",
	MsgMultiWarn:           "While the multi-installation can boot on all PlayStation 2 consoles with the least space requirements, it goes against the design of the Memory Card by introducing controlled filesystem corruption.\n\nIt is hence strongly recommended to create a normal installation instead.",
	MsgQuit:                "Quit program?",
	MsgFormatCfm:           "The memory card will be formatted.\n\nContinue?",
	MsgDumpCfm:             "The memory card will be dumped.\n\nContinue?",
	MsgRestoreCfm:          "The memory card will be restored.\n\nContinue?",
	MsgInstallCfm:          "FreeMcBoot will be installed onto the memory card. Continue?",
	MsgOTAutoStart:         "Starting Auto OpenTuna Install...",
	MsgOTCleanupStart:      "Starting OpenTuna & Forks Cleanup...",
	MsgOTInstallFailed:     "Error: OpenTuna installation failed.",
	MsgOTSuccessAuto:       "OpenTuna Auto-Install Successful!",
	MsgOTSuccessManual:     "OpenTuna Manual Install Successful!",
	MsgOTManualCancelled:   "Manual Install Cancelled.",
	MsgOTCleanupSuccess:    "Cleanup Successful! (Or no targeted folders found).",
	MsgOTUnsupported:       "Error: this console's ROM version is not supported by OpenTuna.",
	MsgMultipleCards:       "Multiple Memory Cards detected. Please select a slot.",
}

var englishLabels = [LblCount]string{
	LblOK:              "OK",
	LblCancel:          "Cancel",
	LblYes:             "Yes",
	LblNo:              "No",
	LblConfirm:         "Confirm",
	LblExit:            "Exit",
	LblEnabled:         "Enabled",
	LblDisabled:        "Disabled",
	LblError:           "Error",
	LblInfo:            "Info",
	LblWarning:         "Warning",
	LblNotice:          "Notice",
	LblWait:            "Please wait",
	LblMenuMain:        "Main Menu",
	LblMenuExtras:      "Extras",
	LblMenuMC:          "Memory Card",
	LblInstall:         "Install",
	LblMultiInstall:    "Multi-Install",
	LblUninstall:       "Uninstall",
	LblDowngradeMulti:  "Downgrade Multi-Install",
	LblFormatMC:        "Format Memory Card",
	LblDumpMC:          "Dump Memory Card",
	LblRestoreMC:       "Restore Memory Card",
	LblInstallCrossPSX: "Install for PSX (DESR)",
	LblInstallFHDB:     "Install FHDB",
	LblUninstallFHDB:   "Uninstall FHDB",
	LblFormatHDD:       "Format HDD",
	LblOpenTuna:        "OpenTuna",
	LblOTMenuTitle:     "OpenTuna Installer",
	LblOTAuto:          "Auto Install",
	LblOTManual:        "Manual Install",
	LblOTCleanup:       "Cleanup",
	LblOTPayload:       "Payload",
	LblOTPayloadSlims:  "Slims",
	LblOTPayloadFats:   "Fats",
	LblOTPayloadFat170: "Fat 170",
	LblInstalling:      "Installing",
	LblDumpingMC:       "Dumping Memory Card",
	LblRestoringMC:     "Restoring Memory Card",
	LblETA:             "ETA",
	LblRate:            "Rate",
	LblKBps:            "KB/s",
	LblB:               "B",
	LblKB:              "KB",
	LblMB:              "MB",
	LblGB:              "GB",
	LblTB:              "TB",
	LblAvailableSpace:  "Available",
	LblRequiredSpace:   "Required",
	LblVersion:         "Version",
	LblLoading:         "Loading",
	LblMemoryCard:      "Memory Card",
	LblSlot1:           "Slot 1",
	LblSlot2:           "Slot 2",
}
