/*
Package selector implements CSS descendant selectors.

Overview

A selector is a whitespace-separated chain of compound nodes, each of
which may carry a type name, an id, classes and status pseudo-classes:

   .btn:hover
   navbar .list .btn#submit

Parse splits selector text into a chain of nodes, computes each node's
canonical full name and specificity rank, and stamps the selector with
a monotonically increasing batch number which breaks specificity ties
in document order.

Nodes enumerate the full names of all partial feature combinations
(EachName); the style rule trie indexes rules under these names so that
a concrete document node can be matched against rules via any subset of
its features.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.selector")
}
