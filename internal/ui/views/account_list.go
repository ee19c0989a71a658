package views

import (
	"fmt"

	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// TreeNodes converts the account hierarchy into pterm tree nodes. label
// renders each account; a nil label uses the plain name.
func TreeNodes(tree []service.AccountNode, label func(*store.Account) string) []pterm.TreeNode {
	if label == nil {
		label = func(acc *store.Account) string { return acc.Name }
	}

	nodes := make([]pterm.TreeNode, 0, len(tree))
	for _, root := range tree {
		node := pterm.TreeNode{Text: label(root.Account)}
		for _, child := range root.Children {
			node.Children = append(node.Children, pterm.TreeNode{Text: label(child)})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (v *AccountListView) Render(tree []service.AccountNode, label func(*store.Account) string) error {
	if len(tree) == 0 {
		pterm.Warning.Println("No accounts yet, create one with 'coin account create'")
		return nil
	}

	count := 0
	for _, node := range tree {
		count += 1 + len(node.Children)
	}

	pterm.DefaultSection.Println("Account Tree")
	root := pterm.TreeNode{Text: "Accounts", Children: TreeNodes(tree, label)}
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		return fmt.Errorf("failed to render account tree: %w", err)
	}

	pterm.Println()
	pterm.Info.Printf("Total: %d accounts\n", count)
	return nil
}
