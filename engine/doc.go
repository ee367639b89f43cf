/*
Package engine implements the parse context: the component that owns
the input buffer and the set of live Paths, drives them to a fixpoint
on every push, merges equivalent paths, flushes confirmed events to the
caller, reclaims buffer memory, and classifies failure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package engine
