// Package toolchain probes the local development environment: whether a
// Go toolchain is installed and whether its version satisfies a snippet's
// declared minimum. Used by `pi doctor` and `pi new`.
package toolchain
