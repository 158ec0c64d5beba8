package lang

// MsgID indexes the message table.
type MsgID int

// LabelID indexes the label table. NoLabel marks an unused slot.
type LabelID int

const NoLabel LabelID = -1

const (
	MsgDescInstall MsgID = iota
	MsgDescMultiInstall
	MsgDescUninstall
	MsgDescDowngradeMulti
	MsgDescFormatMC
	MsgDescDumpMC
	MsgDescRestoreMC
	MsgDescInstallCrossPSX
	MsgDescInstallFHDB
	MsgDescUninstallFHDB
	MsgDescFormatHDD
	MsgDescOpenTuna
	MsgDescQuit
	MsgPromptContinue
	MsgInstallCompleted
	MsgInstallFailed
	MsgCleanupCompleted
	MsgCleanupFailed
	MsgFormatCompleted
	MsgFormatFailed
	MsgDumpCompleted
	MsgDumpFailed
	MsgRestoreCompleted
	MsgRestoreFailed
	MsgNoMC
	MsgNoSpace
	MsgNoHDD
	MsgPleaseWait
	MsgQuitDumping
	MsgQuitRestoring
	MsgMultiWarn
	MsgQuit
	MsgFormatCfm
	MsgDumpCfm
	MsgRestoreCfm
	MsgInstallCfm
	MsgOTAutoStart
	MsgOTCleanupStart
	MsgOTInstallFailed
	MsgOTSuccessAuto
	MsgOTSuccessManual
	MsgOTManualCancelled
	MsgOTCleanupSuccess
	MsgOTUnsupported
	MsgMultipleCards
	MsgCount
)

const (
	LblOK LabelID = iota
	LblCancel
	LblYes
	LblNo
	LblConfirm
	LblExit
	LblEnabled
	LblDisabled
	LblError
	LblInfo
	LblWarning
	LblNotice
	LblWait
	LblMenuMain
	LblMenuExtras
	LblMenuMC
	LblInstall
	LblMultiInstall
	LblUninstall
	LblDowngradeMulti
	LblFormatMC
	LblDumpMC
	LblRestoreMC
	LblInstallCrossPSX
	LblInstallFHDB
	LblUninstallFHDB
	LblFormatHDD
	LblOpenTuna
	LblOTMenuTitle
	LblOTAuto
	LblOTManual
	LblOTCleanup
	LblOTPayload
	LblOTPayloadSlims
	LblOTPayloadFats
	LblOTPayloadFat170
	LblInstalling
	LblDumpingMC
	LblRestoringMC
	LblETA
	LblRate
	LblKBps
	LblB
	LblKB
	LblMB
	LblGB
	LblTB
	LblAvailableSpace
	LblRequiredSpace
	LblVersion
	LblLoading
	LblMemoryCard
	LblSlot1
	LblSlot2
	LblCount
)
