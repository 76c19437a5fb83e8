// Package tone plays the audible overspeed cue.
//
// The Player interface is what the monitor fires on the armed-to-triggered
// edge; the console implementation rings the terminal bell for the configured
// pulse duration.
package tone
