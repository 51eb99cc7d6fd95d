// Package execstream runs an external process as a streaming transform.
//
// A StreamExecutor spawns the process with all three standard channels
// redirected, feeds standard input from a lazily pulled InputSource on a
// dedicated worker, drains standard error into a bounded tail buffer on a
// second worker, and hands the caller an OutputStream that pulls standard
// output in fixed-size chunks. Shutdown ordering, bounded stderr capture,
// and the reconciliation of broken-pipe conditions against the final exit
// status are handled by the executor on every exit path.
package execstream
