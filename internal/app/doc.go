// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle that loads a plan, builds its
// operator graph and reports on it, decoupled from any specific entrypoint
// like a CLI.
package app
