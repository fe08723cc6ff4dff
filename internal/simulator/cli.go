package simulator

import (
	"errors"

	goflags "github.com/jessevdk/go-flags"
)

// ErrHelp is returned by ParseArgs after help output was printed.
var ErrHelp = errors.New("help requested")

// ParseArgs parses command line arguments into a Config.
func ParseArgs(args []string) (*Config, error) {
	var cfg Config

	parser := goflags.NewParser(&cfg, goflags.Default)
	parser.Name = "match-sim"
	parser.LongDescription = "Simulates live tagging of football matches against a running matchtag server, " +
		"then checks each ledger and its statistics and downloads ZIP exports."

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return nil, ErrHelp
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
