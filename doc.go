/*
Package terp implements a streaming, incremental, speculative parsing
engine over a sequence of atomic symbols (characters or bytes).

A grammar is an immutable tree of syntax nodes — terminals, aliases
(references to named definitions), sequences and choices, each carrying
a bounded repetition interval. The engine pushes input in arbitrary-sized
chunks, maintains every live interpretation consistent with the grammar
as a set of forking/merging "paths", and emits a lazy stream of parse
events (Begin/End of named definitions, and matched symbol fragments) as
soon as they are confirmed across all remaining interpretations.

Package structure is as follows:

■ grammar: builds and holds the immutable schema (Syntax tree, matcher
contract, definitions registry).

■ match: a small set of reference terminal matchers sufficient to
exercise and test the engine.

■ path: a single live parse interpretation — call stack, match state,
event buffer.

■ engine: the parse context that drives paths to a fixpoint on every
push, merges equivalent paths, flushes confirmed events, reclaims the
input buffer, and classifies failure.

■ charloc, byteloc: the two built-in Symbol/Location instantiations,
for Unicode scalar values and for bytes.

The base package contains the Symbol, Location and Event types shared
across all other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package terp
