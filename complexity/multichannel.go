package complexity

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/Dzjnt/NeuroKit/signal"
)

// ErrNoChannels reports a multichannel call without any channels.
var ErrNoChannels = errors.New("no channels provided")

// LempelZivChannels computes the Lempel-Ziv complexity of each channel and
// returns the arithmetic mean across channels. The per-channel values are
// reported in Params.Values in input channel order.
//
// Channels are independent, so they are processed concurrently; results are
// reassembled by index before averaging. Any failing channel fails the whole
// call, wrapped with the channel's position and name.
func LempelZivChannels(channels []*signal.Signal, opts Options) (float64, *Params, error) {
	if len(channels) == 0 {
		return 0, nil, ErrNoChannels
	}

	type channelResult struct {
		index int
		value float64
		err   error
	}

	results := make(chan channelResult, len(channels))
	for i, ch := range channels {
		go func(idx int, ch *signal.Signal) {
			v, _, err := LempelZiv(ch, opts)
			results <- channelResult{index: idx, value: v, err: err}
		}(i, ch)
	}

	values := make([]float64, len(channels))
	errs := make([]error, len(channels))
	for range channels {
		r := <-results
		values[r.index] = r.value
		errs[r.index] = r.err
	}

	// Report the first failing channel in input order
	for i, err := range errs {
		if err != nil {
			return 0, nil, fmt.Errorf("channel %d (%s): %w", i, channels[i].Name, err)
		}
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return 0, nil, err
	}

	params := &Params{
		Threshold: opts.Threshold,
		Normalize: opts.Normalize,
		Values:    values,
	}

	return mean, params, nil
}
