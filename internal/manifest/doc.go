// Package manifest handles parsing and validation of snippet.yaml files.
// Every catalog snippet carries one; it declares the snippet's identity,
// the env tokens it reads, and the Go module block used to generate a
// go.mod when the snippet is scaffolded into a project.
package manifest
