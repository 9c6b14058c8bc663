package schedule

import "github.com/rs/zerolog"

// Options configures Build's ambient logging. The zero value is valid;
// normalize fills in a no-op logger, following the small
// exported-config-plus-normalize idiom lvlath's flow.FlowOptions uses
// for its own defaults.
type Options struct {
	// Logger receives one debug event per scheduled instruction and a
	// summary event once the plan is built. A nil Logger disables
	// logging entirely.
	Logger *zerolog.Logger
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
