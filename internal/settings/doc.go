// Package settings provides hierarchical configuration across multiple
// sources. Individual settings pair a value with an optional coercer and
// optional lazy evaluation. Sources include in-memory stores, implementation
// defaults, process environment variables, and flat YAML documents. A
// Settings manager queries an ordered list of sources and flattens one
// setting across them by precedence, so a value can come from a
// high-precedence source while its coercer is inherited from a
// low-precedence one.
package settings
