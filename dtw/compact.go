package dtw

// CompactPath collapses a raw alignment path into one entry per source
// index: the inclusive range of destination indexes matched to it.
//
// The path must be ordered by non-decreasing Source with Source advancing
// by at most one per step, as produced by Align. Repeated destinations for
// the same source extend the current entry's Last, so on ties the latest
// destination wins. An empty path compacts to an empty result.
func CompactPath(path []PathEntry) []CompactedEntry {
	if len(path) == 0 {
		return nil
	}
	compacted := make([]CompactedEntry, 0, path[len(path)-1].Source+1)
	for _, entry := range path {
		if len(compacted) <= entry.Source {
			compacted = append(compacted, CompactedEntry{First: entry.Dest, Last: entry.Dest})
		} else {
			compacted[len(compacted)-1].Last = entry.Dest
		}
	}

	return compacted
}
