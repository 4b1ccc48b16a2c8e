package column

import "sort"

// priorityTitles lists the fixed-priority column titles, in the order
// they must appear before any alphabetically-sorted columns.
var priorityTitles = []string{"status", "category", "cputime", "walltime", "memUsage", "cpuenergy"}

var priorityRank = buildPriorityRank()

func buildPriorityRank() map[string]int {
	rank := make(map[string]int, len(priorityTitles))
	for i, title := range priorityTitles {
		rank[title] = i
	}

	return rank
}

// SortDiscovered orders a set of discovered column titles the way C5's
// run-set loader must: the fixed priority list first (in its declared
// order), then every remaining title alphabetically. Titles not present in
// titles are ignored; titles is sorted in place and also returned.
func SortDiscovered(titles []string) []string {
	sort.SliceStable(titles, func(i, j int) bool {
		ri, iIsPriority := priorityRank[titles[i]]
		rj, jIsPriority := priorityRank[titles[j]]

		switch {
		case iIsPriority && jIsPriority:
			return ri < rj
		case iIsPriority:
			return true
		case jIsPriority:
			return false
		default:
			return titles[i] < titles[j]
		}
	})

	return titles
}
