// Package cttkconf holds the handful of knobs that change how the
// constant-time primitives behave rather than what they compute: whether
// the host is trusted to run a hardware multiply instruction in constant
// time, and the scratch budget callers should assume when sizing their
// own temporary buffers. There is no config file format or parsing here
// — callers set these programmatically at process start, the way a
// crypto library's build-time switches are usually just Go variables
// rather than something read from disk.
package cttkconf

import "github.com/pornin/cttk/ctprim"

// DefaultScratchBudget is the number of bytes a caller can assume is
// cheap to put on the stack for a scratch buffer (e.g. when staging an
// obuf.ArrayRead result) without reaching for the heap.
const DefaultScratchBudget = 4096

// Config collects the process-wide tunables. The zero value is the safe
// default: software multiply, default scratch budget, heap allowed.
type Config struct {
	// NativeMulAllowed, when true, lets ctprim use the hardware MULU/IMUL
	// instruction for 32x32->64 multiplication instead of the branch-free
	// shift-and-add fallback. Only set this true on hardware known to
	// execute integer multiply in constant time; several embedded cores
	// do not.
	NativeMulAllowed bool

	// ScratchBudget overrides DefaultScratchBudget for callers that size
	// their own stack buffers off it.
	ScratchBudget int

	// HeapDisabled, when true, is an assertion that this process must not
	// allocate scratch memory from the heap. bigint's division and
	// multiplication scratch paths already allocate plain Go slices, so
	// this is informational for now: it lets a caller verify its own
	// assumption rather than changing library behavior.
	HeapDisabled bool
}

// current holds the active configuration; Apply replaces it wholesale.
var current = Config{ScratchBudget: DefaultScratchBudget}

// Apply installs cfg as the active configuration and pushes
// NativeMulAllowed through to ctprim. A zero ScratchBudget is replaced by
// DefaultScratchBudget.
func Apply(cfg Config) {
	if cfg.ScratchBudget <= 0 {
		cfg.ScratchBudget = DefaultScratchBudget
	}
	current = cfg
	ctprim.UseHardwareMul = cfg.NativeMulAllowed
}

// Current returns the active configuration.
func Current() Config { return current }
