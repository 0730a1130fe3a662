/*
Package env resolves option defaults from environment variables.

An option description may name a variable with "[env: NAME]".
When that variable is set to a non-blank value, it replaces the "[default: ...]" value of an option that takes an argument, or turns a flag on or off.
Variable names are compared case-insensitive, and values are trimmed.
*/
package env
