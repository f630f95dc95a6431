/*
Package dom connects HTML documents to the cascade engine.

An element of an HTML parse tree presents itself to the style library
as the selector path of its ancestor chain: tag names, ids and classes,
one compound per ancestor. SelectorPath derives that path from an
html.Node; ComputedStyle resolves it against a library.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
