/*
Package match provides a small set of reference Matcher implementations
(grammar.Matcher) sufficient to build and test schemas: single symbols,
symbol sets, symbol ranges, literal runs, and alternatives of literal
runs. Richer matcher libraries are a client's concern; these exist to
exercise the engine end to end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package match
