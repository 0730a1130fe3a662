package cli

// MustGet is used with a getter from [docopt.Values] or [pflag.FlagSet] to panic if the key is not defined, or is not the right type.
// The developer usually knows whether a get call will fail, since the usage document is a constant.
//
// [docopt.Values]: https://pkg.go.dev/github.com/saylorsolutions/docopt#Values
// [pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
