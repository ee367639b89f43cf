/*
Package grammar builds and holds the immutable schema a parse context
works against: a tree of Syntax nodes (terminals, aliases, sequences,
choices), each carrying a bounded Repetition, collected under a Schema
keyed by a user-chosen ID type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar
