package models

import (
	"sort"
	"strings"
)

// CPUFlag is a CPU capability advertised by a machine.
type CPUFlag string

const (
	CPUFlagMMX CPUFlag = "mmx"
	CPUFlagSSE CPUFlag = "sse"
	CPUFlagSEV CPUFlag = "sev"
	CPUFlagAVX CPUFlag = "avx"
)

// ByteSize is a memory quantity in bytes.
type ByteSize uint64

const (
	Mebibyte ByteSize = 1 << 20
	Gibibyte ByteSize = 1 << 30
)

// CPUFlagSet is an unordered set of CPU capability flags.
type CPUFlagSet map[CPUFlag]struct{}

func NewCPUFlagSet(flags ...CPUFlag) CPUFlagSet {
	s := make(CPUFlagSet, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

func (s CPUFlagSet) Has(f CPUFlag) bool {
	_, ok := s[f]
	return ok
}

// String renders the flags sorted, for logs and table output.
func (s CPUFlagSet) String() string {
	names := make([]string, 0, len(s))
	for f := range s {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Hardware is the fixed hardware descriptor of a managed PC. It never changes
// after the entry is created.
type Hardware struct {
	Flags CPUFlagSet
	RAM   ByteSize
}

// NormalHardware is the baseline office machine profile.
func NormalHardware() Hardware {
	return Hardware{
		Flags: NewCPUFlagSet(CPUFlagMMX, CPUFlagSSE),
		RAM:   16 * Gibibyte,
	}
}

// BeefyWorkstation is the default profile for new entries.
func BeefyWorkstation() Hardware {
	return Hardware{
		Flags: NewCPUFlagSet(CPUFlagMMX, CPUFlagSSE, CPUFlagSEV),
		RAM:   32 * Gibibyte,
	}
}

// NerdWorkstation is the fully loaded profile.
func NerdWorkstation() Hardware {
	return Hardware{
		Flags: NewCPUFlagSet(CPUFlagMMX, CPUFlagSSE, CPUFlagSEV, CPUFlagAVX),
		RAM:   64 * Gibibyte,
	}
}
