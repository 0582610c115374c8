// Package script allows the front-end to record and replay debugging
// sessions. Following the teacher's own terminology (to avoid overloading
// "recording", which the teacher uses elsewhere for a different concept)
// we call this scribing and rescribing.
//
// Scripts can be handwritten and rescribed as though they had been scribed
// by the front-end. There is a risk in that case that some commands will
// fail - invalid commands are never written to the script file by Scribe,
// but Rescribe will happily try to replay anything it finds, printing
// whatever error a failing command produces to the terminal.
//
// Scribe also writes terminal output to the script file, purely for the
// benefit of a human reader - it has no effect when the script is later
// rescribed.
//
// Rescribe implements terminal.Input and so can be used directly as the
// input source for the front-end's input loop, indistinguishable (from the
// loop's point of view) from a human typing at a real terminal.
package script
