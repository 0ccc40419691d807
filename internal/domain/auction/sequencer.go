package auction

// NextUnsold selects the next roster index to put on the block.
//
// Two bounded scans: first forward from the position after current (or from
// zero when loopFromStart), then a full scan from zero so unsold players
// sitting behind the cursor (typically revived by a requeue) are still
// found. Returns false only when no unsold player exists anywhere.
func NextUnsold(players []Player, current int, loopFromStart bool) (int, bool) {
	if len(players) == 0 {
		return -1, false
	}

	start := 0
	if !loopFromStart && current >= -1 {
		start = current + 1
	}
	for idx := start; idx < len(players); idx++ {
		if players[idx].Status == StatusUnsold {
			return idx, true
		}
	}

	for idx := 0; idx < len(players); idx++ {
		if players[idx].Status == StatusUnsold {
			return idx, true
		}
	}

	return -1, false
}
