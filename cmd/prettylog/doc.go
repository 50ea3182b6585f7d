// Command prettylog demonstrates and exercises the prettylog library: it can
// emit a sample line per severity, print the severity style table, and
// scaffold or show configuration.
package main
