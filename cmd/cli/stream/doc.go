// Package stream provides the run command, which executes a program as a
// bidirectional streaming transform over standard input and output.
package stream
