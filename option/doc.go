/*
Package option holds the canonical representation of command-line options declared by a usage document.

An [Option] has an optional short form ("-v"), an optional long form ("--verbose"), an arity of 0 (a boolean flag) or 1 (takes a value), and a default value.
Options are collected in a [Registry] while the options section and usage patterns of a document are read.

Option description lines look like this:

	-s KN, --speed=KN  Speed in knots [default: 10] [env: SHIP_SPEED].

Everything before the first double space names the flags, and everything after it is description text that may carry a default value and an environment variable name.
*/
package option
