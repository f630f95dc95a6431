/*
Package cssom decouples CSS stylesheet implementations from the cascade
engine.

Overview

The engine in package cascade consumes (selector, declaration, origin)
triples; where those triples come from is none of its business. This
package introduces interfaces StyleSheet and Rule for concrete CSS
sources to implement (see package douceuradapter for one backed by a
real CSS parser), plus LoadStyleSheet, which feeds every rule of a
stylesheet through a library's property registry into its rule trie.

Having this interface imposes a performance hit. However, this
implementation of CSS-styling will never trade modularity and
clarity for performance.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
