// Package logging implements houston.Logger.
//
// ConsoleLogger writes to stderr (or any writer) and is what the commands
// use. Recorder keeps entries in memory so tests can assert on what a
// service logged.
package logging
