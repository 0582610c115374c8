package interceptor

// front-end command keywords. Grounded on the teacher's
// debugger/commands_template.go constant block, renamed to the front-end
// commands spec.md §4.5 names instead of the VCS debugger's keyword set.
const (
	cmdHelp        = "HELP"
	cmdInfo        = "INFO"
	cmdList        = "LIST"
	cmdFind        = "FIND"
	cmdExamine     = "X"
	cmdDisplay     = "DISPLAY"
	cmdUndisplay   = "UNDISPLAY"
	cmdFile        = "FILE"
	cmdReset       = "RESET"
	cmdLoad        = "LOAD"
	cmdTrace       = "TRACE"
	cmdSerial      = "SERIAL"
	cmdSemihosting = "SEMIHOSTING"
	cmdDirectory   = "DIRECTORY"
	cmdDisassemble = "DISASSEMBLE"
	cmdAssembly    = "ASSEMBLY"
)

// commandTemplate lists the keywords the interceptor recognises as its own,
// compiled once via commandline.ParseCommandTemplate in New. Any
// line whose leading keyword does not appear here falls through to GDB
// unrewritten - this is how "b main", "continue", "print x" and every other
// ordinary GDB/MI-backed command keeps working without the interceptor
// needing to know about it.
var commandTemplate = []string{
	"HELP (%S)",
	"INFO [%S]",
	"LIST (%S)",
	"FIND (%S)",
	"X (%S) %S",
	"DISPLAY (%S) %S",
	"UNDISPLAY %N",
	"FILE %PATH",
	"RESET (hard|load)",
	"LOAD (%PATH)",
	"TRACE %S",
	"SERIAL %S",
	"SEMIHOSTING clear",
	"DIRECTORY %DIR",
	"DISASSEMBLE (on|off)",
	"ASSEMBLY (on|off)",
}
