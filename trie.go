package cascade

import "github.com/npillmayer/cascade/selector"

// The style rule trie. Rules are indexed by the full names of their
// selectors' compound nodes: groups[i] maps the full name of the
// compound at distance i from the selector's right end to a link
// group. Within a group, links are keyed by the full-name path of the
// compounds to the right ("*" for the rightmost compound itself), and
// every link knows the links of the next compound to the left
// (parents). A rule hangs off the link of its leftmost compound.

type linkGroup struct {
	name  string
	node  *selector.Node
	links map[string]*styleLink
}

type styleLink struct {
	selector string // path of the compounds right of this one
	group    *linkGroup
	rules    []*Rule
	parents  map[string]*styleLink
}

// insertRule threads the selector through the trie, right to left, and
// binds a fresh rule at the leftmost link.
func (l *Library) insertRule(sel *selector.Selector, space string) *Rule {
	var lnk *styleLink
	var parents map[string]*styleLink
	path := ""
	for i, right := 0, sel.Len()-1; right >= 0; right, i = right-1, i+1 {
		for len(l.groups) <= i {
			l.groups = append(l.groups, make(map[string]*linkGroup))
		}
		group := l.groups[i]
		sn := sel.Node(right)
		slg := group[sn.Fullname()]
		if slg == nil {
			slg = &linkGroup{
				name:  sn.Fullname(),
				node:  sn.Copy(),
				links: make(map[string]*styleLink),
			}
			group[sn.Fullname()] = slg
		}
		key := "*"
		if i > 0 {
			key = path
		}
		lnk = slg.links[key]
		if lnk == nil {
			lnk = &styleLink{
				selector: key,
				group:    slg,
				parents:  make(map[string]*styleLink),
			}
			slg.links[key] = lnk
		}
		if i == 0 {
			path = sn.Fullname()
		} else {
			path = sn.Fullname() + " " + path
		}
		// first registration wins
		if parents != nil {
			if _, ok := parents[sn.Fullname()]; !ok {
				parents[sn.Fullname()] = lnk
			}
		}
		parents = lnk.parents
	}
	rule := &Rule{
		Space:    space,
		Selector: sel.String(),
		Props:    NewPropertyList(),
		rank:     sel.Rank(),
		batch:    sel.BatchNum(),
	}
	lnk.rules = append(lnk.rules, rule)
	return rule
}

// queryRules collects every rule whose selector path matches sel, in
// cascade order.
func (l *Library) queryRules(sel *selector.Selector) []*Rule {
	if sel == nil || sel.Len() == 0 || len(l.groups) == 0 {
		return nil
	}
	// candidate groups are keyed by the fingerprints of the rightmost
	// compound, plus the wildcard
	i := sel.Len() - 1
	names := sel.Node(i).Names()
	if sel.Node(i).Fullname() != "*" {
		names = append(names, "*")
	}
	var out []*Rule
	seen := make(map[*Rule]bool)
	for _, name := range names {
		slg := l.groups[0][name]
		if slg == nil {
			continue
		}
		for _, lnk := range slg.links {
			queryLink(lnk, sel, i, &out, seen)
		}
	}
	return out
}

// queryLink collects the link's rules and walks its parent links for
// every remaining ancestor position. Ancestors may sit anywhere left
// of the current position, which is what gives the descendant
// combinator its "skip" semantics.
func queryLink(lnk *styleLink, sel *selector.Selector, i int, out *[]*Rule, seen map[*Rule]bool) {
	collectRules(lnk, out, seen)
	for j := i - 1; j >= 0; j-- {
		sel.Node(j).EachName(func(name string) bool {
			if parent := lnk.parents[name]; parent != nil {
				queryLink(parent, sel, j, out, seen)
			}
			return true
		})
	}
}

// collectRules inserts the link's rules into out, keeping out sorted
// descending by (rank, batch).
func collectRules(lnk *styleLink, out *[]*Rule, seen map[*Rule]bool) {
	for _, r := range lnk.rules {
		if seen[r] {
			continue
		}
		seen[r] = true
		pos := len(*out)
		for k, existing := range *out {
			if r.rank > existing.rank ||
				(r.rank == existing.rank && r.batch > existing.batch) {
				pos = k
				break
			}
		}
		*out = append(*out, nil)
		copy((*out)[pos+1:], (*out)[pos:])
		(*out)[pos] = r
	}
}
