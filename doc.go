/*
Package cascade implements a CSS rule library and cascade engine.

Overview

A Library indexes style rules under their selectors and resolves the
computed style for an element's selector path:

   l := cascade.New()
   sel, _ := selector.Parse(".btn:hover")
   l.AddStyleSheet(sel, decl, "app.css")
   …
   styles := l.ComputedStyle(query)

Rules are kept in a trie keyed by compound-selector full names, so a
query walks only the links that could match the presented path. Matching
rules merge in cascade order, highest specificity first, later
registration winning ties. Computed declarations are cached by selector
hash; the cache empties whenever a rule is added.

A Library carries its own property, keyword and value-type registries,
pre-seeded with the common CSS property set. Additional properties,
keywords, data types and grammar aliases may be registered at runtime.

Status

The engine covers descendant selectors with type, id, class and status
constraints. Sibling and child combinators, media queries and variables
are not supported.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cascade")
}
