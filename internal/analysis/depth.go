package analysis

import (
	"encoding/json"
	"errors"
	"slices"
)

// ErrInvalidDepth is returned when an analysis depth value is not recognized.
var ErrInvalidDepth = errors.New("invalid analysis depth")

// Depth selects the instruction template used for model analysis.
type Depth string

// Valid analysis depths.
const (
	DepthBasic         Depth = "basic"
	DepthComprehensive Depth = "comprehensive"
	DepthDetailed      Depth = "detailed"
)

var depths = []Depth{
	DepthBasic,
	DepthComprehensive,
	DepthDetailed,
}

// Depths returns the list of valid analysis depths.
func Depths() []Depth {
	return depths
}

// UnmarshalJSON validates that the decoded string is a known depth value.
func (d *Depth) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Depth(raw)
	if !slices.Contains(depths, v) {
		return ErrInvalidDepth
	}
	*d = v
	return nil
}

// ParseDepth validates a string as a known analysis depth.
// Returns ErrInvalidDepth if the value is not recognized.
func ParseDepth(s string) (Depth, error) {
	v := Depth(s)
	if !slices.Contains(depths, v) {
		return "", ErrInvalidDepth
	}
	return v, nil
}
