/*
Package path implements a single live parse interpretation: a call
stack of frames over a Schema's Syntax tree, the per-frame match state,
and a pending event buffer. The engine package drives many Paths in
parallel, forking them on Choice and merging the ones that become
structurally equivalent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package path
