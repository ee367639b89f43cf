/*
Package xlog provides the tracing entry points shared by every terp
package: a per-package tracer() keyed by a dotted name, and a global
syntax tracer T(), both backed by schuko/tracing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xlog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer selects a named trace channel, e.g. "terp.engine", "terp.path",
// "terp.grammar". Packages keep a small local wrapper:
//
//	func tracer() tracing.Trace { return xlog.Tracer("terp.engine") }
func Tracer(key string) tracing.Trace {
	return tracing.Select(key)
}

// T traces to the global syntax tracer, for call sites that don't warrant
// their own channel (diagnostics formatting, one-off dumps).
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
