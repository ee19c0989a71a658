package service

import (
	"cmp"
	"slices"

	"github.com/hance08/coin/internal/store"
)

type AccountNode struct {
	Account  *store.Account
	Children []*store.Account
}

// BuildTree groups accounts into a two-level hierarchy. Accounts whose parent
// is missing or is itself a child are placed at the top level.
func BuildTree(accounts []*store.Account) []AccountNode {
	accountMap := make(map[int64]*store.Account, len(accounts))
	for _, acc := range accounts {
		accountMap[acc.ID] = acc
	}

	childrenMap := make(map[int64][]*store.Account)
	var roots []*store.Account

	for _, acc := range accounts {
		isRoot := true
		if acc.ParentID != nil {
			if parent, ok := accountMap[*acc.ParentID]; ok && parent.IsTopLevel() {
				isRoot = false
			}
		}

		if isRoot {
			roots = append(roots, acc)
		} else {
			childrenMap[*acc.ParentID] = append(childrenMap[*acc.ParentID], acc)
		}
	}

	slices.SortStableFunc(roots, byName)

	tree := make([]AccountNode, 0, len(roots))
	for _, root := range roots {
		children := childrenMap[root.ID]
		slices.SortStableFunc(children, byName)
		tree = append(tree, AccountNode{Account: root, Children: children})
	}
	return tree
}

func byName(a, b *store.Account) int {
	return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
}
