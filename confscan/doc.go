// Package confscan implements the lexical scanner for the libconfig
// grammar family. It turns one or more configuration files into a typed
// token stream for a grammar parser to consume:
//   - Punctuation for groups `{}`, arrays `[]`, lists `()`, assignment
//     via `=` or `:`, commas and semicolons.
//   - Names, case-insensitive booleans, and quoted strings with control
//     and \xHH escape decoding.
//   - Numeric literals across decimal, octal-shaped, hex, float, and
//     explicit-width (`L`/`LL`) variants, with overflow-driven promotion
//     between 32-bit and 64-bit kinds.
//   - `@include "file"` and `@include_dir "dir"` directives, expanded
//     transparently: tokens from included files appear exactly where the
//     directive stood, with cycle detection across the include stack.
//
// Comments beginning with `#` or `//` run to end of line; `/* ... */`
// blocks may span lines. Scanner-level failures surface as ERROR tokens
// plus a ScanError record; scanning continues at the caller's discretion.
package confscan
