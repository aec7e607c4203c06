package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/tourstate/tsp"
)

// Rough per-object sizes on a 64-bit build.
const (
	cityBytes     = 32  // string header + two float64
	permIdxBytes  = 8   // one int of a permutation
	stateOverhead = 160 // State header, slice header, key, map slot
)

var errNeighborhoodTooBig = errors.New("neighborhood does not fit in available memory")

// availableMemory is replaced in tests.
var availableMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// neighborhoodFootprint estimates the bytes held while size neighbors of an
// n-city tour are alive. Saturates at math.MaxUint64.
func neighborhoodFootprint(size, n int) uint64 {
	per := uint64(n)*cityBytes + uint64(n)*permIdxBytes + stateOverhead
	if uint64(size) > math.MaxUint64/per {
		return math.MaxUint64
	}
	return uint64(size) * per
}

// checkNeighborhoodFits refuses to build a neighborhood that would not fit in
// the memory currently available on the host. If the host cannot be probed
// the check is skipped with a warning.
func checkNeighborhoodFits(s *tsp.State) error {
	size, err := s.NeighborhoodSize()
	if err != nil {
		return err
	}
	need := neighborhoodFootprint(size, s.Len())

	avail, err := availableMemory()
	if err != nil {
		log.Warn().Err(err).Msg("cannot probe host memory, skipping neighborhood size check")
		return nil
	}
	log.Debug().Int("neighbors", size).Uint64("need_bytes", need).Uint64("available_bytes", avail).Msg("neighborhood footprint")

	if need > avail {
		return fmt.Errorf("%w: %d neighbors need ~%d bytes, %d available", errNeighborhoodTooBig, size, need, avail)
	}
	return nil
}
