// Package console implements the interactive surface of the tool: the
// validated input prompts, the report rendering, and the raw-data
// pager. All user-facing text goes through this package; diagnostics
// go to the structured logger.
package console
