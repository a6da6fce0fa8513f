//go:build !simdebug

package sim

const debugInvariants = false
