package workload

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Op is a list operation issued by a worker.
type Op int

const (
	OpGet Op = iota
	OpSet
	OpContains
	OpAppend

	numOps
)

var opNames = [numOps]string{"get", "set", "contains", "append"}

// String returns the operation name.
func (o Op) String() string {
	if o < 0 || o >= numOps {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	return []Op{OpGet, OpSet, OpContains, OpAppend}
}

func parseOp(s string) (Op, error) {
	for i, name := range opNames {
		if name == s {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Mix holds relative operation weights.
type Mix struct {
	weights [numOps]int
	total   int
}

// Presets are the named mixes accepted by ParseMix.
var Presets = map[string]string{
	"read-heavy":  "contains=90,set=5,get=5",
	"write-heavy": "set=95,contains=5",
	"append":      "append=100",
	"mixed":       "get=25,set=25,contains=25,append=25",
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseMix parses a preset name or a comma-separated list of op=weight
// pairs such as "contains=90,set=5,get=5".
func ParseMix(s string) (Mix, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if p, ok := Presets[s]; ok {
		s = p
	}

	var m Mix
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return Mix{}, fmt.Errorf("mix entry %q: want op=weight", part)
		}
		op, err := parseOp(strings.TrimSpace(name))
		if err != nil {
			return Mix{}, fmt.Errorf("mix entry %q: %w", part, err)
		}
		w, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || w < 0 {
			return Mix{}, fmt.Errorf("mix entry %q: weight must be a non-negative integer", part)
		}
		if int64(w) > math.MaxUint32-int64(m.total) {
			return Mix{}, fmt.Errorf("mix %q: weights sum past %d", s, uint32(math.MaxUint32))
		}
		m.weights[op] += w
		m.total += w
	}

	if m.total == 0 {
		return Mix{}, fmt.Errorf("mix %q has no positive weights", s)
	}
	return m, nil
}

// Weight returns the weight of op.
func (m Mix) Weight(op Op) int {
	return m.weights[op]
}

// Pick maps r onto an operation in proportion to the weights.
func (m Mix) Pick(r uint32) Op {
	n := int(uint64(r) % uint64(m.total))
	for i, w := range m.weights {
		if n < w {
			return Op(i)
		}
		n -= w
	}
	return OpGet
}

// String renders the mix in ParseMix syntax, omitting zero weights.
func (m Mix) String() string {
	var parts []string
	for i, w := range m.weights {
		if w > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", opNames[i], w))
		}
	}
	return strings.Join(parts, ",")
}
