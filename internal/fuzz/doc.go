// Package fuzztests houses Go fuzz harnesses for the IR and emitter. They
// feed arbitrary messages and names through program construction and both
// dialect renderers, checking the output's line layout and that invalid
// input fails with typed errors instead of panics.
package fuzztests
