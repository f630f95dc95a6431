/*
Package style provides the value model for CSS properties.

Overview

CSS declarations bind property keys to values. Values come in a fixed
set of shapes: numbers, integers, strings, keywords, colors, image
references, unit values (a number together with a unit suffix such as
"px" or "%"), and arrays of such values. Type Value is a tagged union
over these shapes, in the spirit of CSSStyleValue from the CSS Typed
OM, see

   https://developer.mozilla.org/en-US/docs/Web/API/CSSStyleValue

The package also holds the two registries every styling engine needs:
a bidirectional keyword registry (mapping small integer identifiers to
names like "auto" or "inline-block") and a property registry (mapping
property keys to definitions carrying a compiled value syntax and an
initial value).

We deliberately model values as a variant struct with per-variant
clone semantics rather than as an interface hierarchy. The set of
variants is closed, and most of them are trivially copyable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}
