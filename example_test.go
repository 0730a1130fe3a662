package docopt

import (
	"errors"
	"fmt"
)

func ExampleParse() {
	const doc = `Naval Fate.

Usage:
  naval_fate ship new <name>...
  naval_fate ship <name> move <x> <y> [--speed=<kn>]
  naval_fate (-h | --help)

Options:
  -h --help     Show this screen.
  --speed=<kn>  Speed in knots [default: 10].
`
	vals, err := Parse(doc, []string{"ship", "Guardian", "move", "100", "150"}, WithEnv(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := vals.String("<x>")
	speed, _ := vals.String("--speed")
	names, _ := vals.Strings("<name>")
	fmt.Println(names, x, speed)

	_, err = Parse(doc, []string{"--help"})
	fmt.Println(errors.Is(err, ErrHelp))

	_, err = Parse(doc, []string{"ship"})
	fmt.Println(err)
	// Output:
	// [Guardian] 100 10
	// true
	// usage error: input does not satisfy usage
}
