//go:build simdebug

package sim

// debugInvariants makes Step validate the state after every tick and panic
// on the first violation.
const debugInvariants = true
