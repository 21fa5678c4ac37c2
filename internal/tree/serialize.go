package tree

import "fmt"

// EncodeMatrix flattens root into spec §6's dense, cross-boundary
// matrix format: one row per node, pre-order, columns
//
//	{node_id, is_leaf, split_var (1-indexed, 0 if leaf),
//	 split_val (0 if leaf), left_child_id, right_child_id,
//	 action_id (1-indexed, 0 if internal)}
//
// node ids are 1-indexed, matching the 1-indexing spec §6 already
// requires of split_var and action_id for host-language compatibility.
func EncodeMatrix(root *Node) [][]float64 {
	var rows [][]float64
	nextID := 1
	var walk func(n *Node) int
	walk = func(n *Node) int {
		id := nextID
		nextID++
		row := make([]float64, 7)
		row[0] = float64(id)
		if n.IsLeaf {
			row[1] = 1
			row[2] = 0
			row[3] = 0
			row[4] = 0
			row[5] = 0
			row[6] = float64(n.Action + 1)
			rows = append(rows, row)
			return id
		}
		row[1] = 0
		row[2] = float64(n.SplitVar + 1)
		row[3] = n.SplitVal
		row[6] = 0
		rows = append(rows, row)
		rowIdx := len(rows) - 1
		leftID := walk(n.Left)
		rightID := walk(n.Right)
		rows[rowIdx][4] = float64(leftID)
		rows[rowIdx][5] = float64(rightID)
		return id
	}
	walk(root)
	return rows
}

// DecodeMatrix reconstructs a Node tree from EncodeMatrix's output.
// Depth and Height are recomputed from topology; Reward is not part of
// the wire format (spec §6's column list carries no reward column) and
// decodes to 0 on every node — round-tripping is a topology/action/
// split guarantee, not a reward one.
func DecodeMatrix(rows [][]float64) (*Node, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("policytree: empty tree matrix")
	}
	byID := make(map[int][]float64, len(rows))
	for _, r := range rows {
		if len(r) != 7 {
			return nil, fmt.Errorf("policytree: tree matrix row has %d columns, want 7", len(r))
		}
		byID[int(r[0])] = r
	}
	var build func(id, depth int) (*Node, error)
	build = func(id, depth int) (*Node, error) {
		row, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("policytree: tree matrix references missing node id %d", id)
		}
		if row[1] != 0 {
			return &Node{Depth: depth, Height: 0, IsLeaf: true, Action: int(row[6]) - 1}, nil
		}
		left, err := build(int(row[4]), depth+1)
		if err != nil {
			return nil, err
		}
		right, err := build(int(row[5]), depth+1)
		if err != nil {
			return nil, err
		}
		h := left.Height
		if right.Height > h {
			h = right.Height
		}
		return &Node{
			Depth:    depth,
			Height:   h + 1,
			IsLeaf:   false,
			SplitVar: int(row[2]) - 1,
			SplitVal: row[3],
			Left:     left,
			Right:    right,
		}, nil
	}
	return build(1, 0)
}
