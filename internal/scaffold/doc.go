// Package scaffold copies a catalog snippet into a target directory and
// generates the project files the snippet needs to stand alone: a go.mod
// from the manifest's Go block and a .env.example from its tokens.
package scaffold
