package model

// PlayerScore is one row of the anchor ledger
type PlayerScore struct {
	PlayerID PlayerID
	Count    int // never negative; mutations clamp at zero
}

// Anchors returns the players whose count equals the minimum count among
// ids. All tied players are returned; there is no further tie-break.
func Anchors(ids []PlayerID, counts map[PlayerID]int) []PlayerID {
	if len(ids) == 0 {
		return nil
	}

	min := counts[ids[0]]
	for _, id := range ids[1:] {
		if counts[id] < min {
			min = counts[id]
		}
	}

	var anchors []PlayerID
	for _, id := range ids {
		if counts[id] == min {
			anchors = append(anchors, id)
		}
	}
	return anchors
}
