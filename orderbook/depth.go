package orderbook

import (
	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/ccyyhlg/lob/domain"
)

// bestPrice returns the price of tree's best level (its Left() node,
// since both bids and asks are built with a comparator that makes the
// tree's own ascending order equal to best-price-first), or
// InvalidPrice if tree is empty.
func bestPrice(tree *redblacktree.Tree[domain.Price, *PriceLevel]) domain.Price {
	node := tree.Left()
	if node == nil {
		return domain.InvalidPrice
	}
	return node.Value.Price
}

// depth walks tree best-first via its ascending iterator (which is
// already price-priority order for both sides, by construction) and
// copies up to n (price, total quantity) pairs.
func depth(tree *redblacktree.Tree[domain.Price, *PriceLevel], n int) []DepthLevel {
	if n <= 0 || tree.Empty() {
		return nil
	}

	out := make([]DepthLevel, 0, n)
	it := tree.Iterator()
	for it.Next() && len(out) < n {
		level := it.Value()
		out = append(out, DepthLevel{Price: level.Price, Qty: level.TotalQty})
	}
	return out
}
