package main

/*
render.go walks a value.Value tree recursively, building a
pterm.LeveledList that pterm.NewTreeFromLeveledList turns into a
rendered parse tree.
*/

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ash-lang/gll/value"
)

func treeFromValue(v value.Value) pterm.TreeNode {
	ll := leveledValue(v, pterm.LeveledList{}, 0)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledValue(v value.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v.Kind() {
	case value.Leaf:
		return append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%q", v.LeafString())})
	case value.Empty:
		return append(ll, pterm.LeveledListItem{Level: level, Text: "()"})
	default: // Seq, Reduced
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%v", v.Tag())})
		for _, c := range v.Children() {
			ll = leveledValue(c, ll, level+1)
		}
		return ll
	}
}
