/*
Package valdef compiles CSS value-definition grammars and parses
concrete value strings against them.

Overview

Properties declare the values they accept with the CSS value-definition
syntax, e.g.

   width:      auto | <length> | <percentage>
   box-shadow: none | <shadow>

where `<shadow>` may be an alias for `<length>{2,4} && <color>?`.
Compile turns such a grammar string into a tree of combinator nodes;
ParseValue matches a concrete value string ("32px", "0% 0%", …) against
the tree and produces a tagged style.Value.

The grammar language supports literal keywords, angle-bracket data-type
references, the combinators `|` (exactly one), `||` (one or more, any
order), `&&` (all, any order) and juxtaposition (all, in order),
grouping with `[ … ]`, and the multipliers `{min,max}` and `?`.
Combinator precedence, tightest first: juxtaposition, `&&`, `||`, `|`.

Data types are pluggable parser functions registered by name; a type
alias table allows `<name>` atoms to expand into sub-grammars at
compile time.

See
https://developer.mozilla.org/en-US/docs/Web/CSS/Value_definition_syntax
and https://drafts.csswg.org/css-values/#value-defs .

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package valdef

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.valdef'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.valdef")
}
