package audio

import "fmt"

// ----- Destination ----- //

// LFO destinations.
const (
	destNone = iota
	destVolume
	destMorph
	destCutoff
	destResonance
)

var destinationNames = []string{"none", "volume", "morph", "cutoff", "resonance"}

func destinationFromString(s string) (int, error) {
	for i, name := range destinationNames {
		if name == s {
			return i, nil
		}
	}
	return destNone, fmt.Errorf("unknown destination %q", s)
}

func destinationToString(dest int) string {
	if dest < 0 || dest >= len(destinationNames) {
		return "none"
	}
	return destinationNames[dest]
}
