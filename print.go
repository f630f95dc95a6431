package cascade

import (
	"fmt"
	"sort"

	tp "github.com/xlab/treeprint"
)

// DebugString renders the style rule trie: one branch per link group
// of the rightmost level, links with their parent chains below, rules
// as leaves. Groups and links print in sorted key order to keep the
// output stable.
func (l *Library) DebugString() string {
	p := tp.New()
	if len(l.groups) == 0 {
		return p.String()
	}
	for _, name := range sortedKeys(l.groups[0]) {
		slg := l.groups[0][name]
		branch := p.AddBranch(fmt.Sprintf("group %q", slg.name))
		for _, key := range sortedLinkKeys(slg.links) {
			printLink(branch, slg.links[key])
		}
	}
	return p.String()
}

func printLink(branch tp.Tree, lnk *styleLink) {
	sub := branch.AddBranch(fmt.Sprintf("link %q below %q", lnk.group.name, lnk.selector))
	for _, r := range lnk.rules {
		sub.AddNode(r.String())
	}
	for _, name := range sortedLinkKeys(lnk.parents) {
		printLink(sub, lnk.parents[name])
	}
}

func sortedKeys(m map[string]*linkGroup) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLinkKeys(m map[string]*styleLink) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
