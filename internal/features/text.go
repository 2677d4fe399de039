package features

import "math"

// Entropy returns the Shannon entropy of s in bits, computed over runes.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}

	// Counts are summed in first-occurrence order so the result is
	// bit-identical across calls.
	index := make(map[rune]int)
	var counts []int
	total := 0
	for _, r := range s {
		if i, ok := index[r]; ok {
			counts[i]++
		} else {
			index[r] = len(counts)
			counts = append(counts, 1)
		}
		total++
	}

	var entropy float64
	n := float64(total)
	for _, c := range counts {
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Levenshtein returns the edit distance between a and b.
func Levenshtein(a, b string) int {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, c1 := range s1 {
		curr[0] = i + 1
		for j, c2 := range s2 {
			cost := 1
			if c1 == c2 {
				cost = 0
			}
			curr[j+1] = min(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

// minBrandDistance returns the smallest edit distance from username to any
// brand in brands.
func minBrandDistance(username string, brands []string) int {
	if len(brands) == 0 {
		return DegenerateBrandDistance
	}
	best := math.MaxInt
	for _, brand := range brands {
		if d := Levenshtein(username, brand); d < best {
			best = d
		}
	}
	return best
}
