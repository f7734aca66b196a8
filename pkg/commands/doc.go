// Package commands holds the operations behind each CLI command. Each
// subpackage takes an options struct and returns a result value, leaving
// presentation to the caller.
package commands
