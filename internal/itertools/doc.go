// Package itertools provides combinators over pull-based byte-chunk
// sequences: assembling delimiter-separated items across chunk boundaries,
// incremental UTF-8 decoding, per-item JSON parsing, side-band data routing
// around a processing stage, and chunk alignment for pattern containment
// checks. The combinators compose with the output of streamed subprocess
// execution, where chunk boundaries are arbitrary.
package itertools
