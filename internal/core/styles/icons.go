package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconPill     = "\U000F0376" // 󰍶
	IconCalendar = ""     //
	IconMic      = ""     //
	IconClock    = ""     //
)

// Toast level icons.
var (
	IconNotifyInfo    = "" //
	IconNotifyWarning = "" //
	IconNotifyError   = "" //
)
