package tree

// Rank is the tuple used to pick the single best reading out of a
// forest of candidate trees: lexicographically greater wins, and a tie
// at the top means the input is genuinely ambiguous.
type Rank struct {
	UnnamedStreets int
	HasDoorNumber  bool
	TypeRank       int
}

// Less reports whether r is strictly worse than other.
func (r Rank) Less(other Rank) bool {
	if r.UnnamedStreets != other.UnnamedStreets {
		return r.UnnamedStreets < other.UnnamedStreets
	}
	if r.HasDoorNumber != other.HasDoorNumber {
		return !r.HasDoorNumber && other.HasDoorNumber
	}
	return r.TypeRank < other.TypeRank
}

// Equal reports whether r and other compare equal under Less.
func (r Rank) Equal(other Rank) bool {
	return r == other
}

var rankWithDoorNumber = []string{"intersection", "simple", "between"}
var rankWithoutDoorNumber = []string{"simple", "intersection", "between"}

// ComputeRank derives the rank of an address tree: root is the
// "simple"/"intersection"/"between" node (the child of the grammar's
// `address` start symbol).
func ComputeRank(root *Node) Rank {
	hasDoorNumber := len(root.Find("street_with_num")) > 0

	order := rankWithoutDoorNumber
	if hasDoorNumber {
		order = rankWithDoorNumber
	}
	typeRank := indexOf(order, root.Label)

	unnamed := 0
	for _, label := range []string{"street_no_num", "street_with_num"} {
		for _, sub := range root.Find(label) {
			first := sub.FirstChild()
			if first == nil {
				continue
			}
			grandchild := first.FirstChild()
			if grandchild != nil && grandchild.Label == "unnamed_street" {
				unnamed++
			}
		}
	}

	return Rank{UnnamedStreets: unnamed, HasDoorNumber: hasDoorNumber, TypeRank: typeRank}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
