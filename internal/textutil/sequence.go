package textutil

import "slices"

// popularMinLength is the length of b at which elements occurring in more than
// 1% of positions stop seeding matches.
const popularMinLength = 200

// SequenceRatio measures the similarity of a and b as 2*M/T, where T is the
// total number of code points in both strings and M is the number of code
// points covered by matching blocks. Blocks are found by repeatedly taking the
// longest common contiguous run and recursing on the unmatched sides, the
// classic longest-matching-blocks approach used by sequence diff tools.
//
// Two empty strings are identical and score 1.
func SequenceRatio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	m := newSequenceMatcher(ar, br)
	return 2.0 * float64(m.matchedLength()) / float64(total)
}

type match struct {
	a, b, size int
}

type sequenceMatcher struct {
	a, b []rune
	// b2j maps each non-popular element of b to its ascending positions.
	b2j map[rune][]int
}

func newSequenceMatcher(a, b []rune) *sequenceMatcher {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	if n := len(b); n >= popularMinLength {
		limit := n/100 + 1
		for r, positions := range b2j {
			if len(positions) > limit {
				delete(b2j, r)
			}
		}
	}
	return &sequenceMatcher{a: a, b: b, b2j: b2j}
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] inside the given
// bounds, preferring the earliest i and then the earliest j on ties. The block
// is then widened across neighbouring equal elements, which lets popular
// elements join a block even though they never seed one.
func (m *sequenceMatcher) longestMatch(alo, ahi, blo, bhi int) match {
	best := match{a: alo, b: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = match{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = next
	}

	for best.a > alo && best.b > blo && m.a[best.a-1] == m.b[best.b-1] {
		best.a--
		best.b--
		best.size++
	}
	for best.a+best.size < ahi && best.b+best.size < bhi && m.a[best.a+best.size] == m.b[best.b+best.size] {
		best.size++
	}
	return best
}

// matchingBlocks returns the non-overlapping matching blocks ordered by
// position.
func (m *sequenceMatcher) matchingBlocks() []match {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var blocks []match
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		found := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if found.size == 0 {
			continue
		}
		blocks = append(blocks, found)
		if s.alo < found.a && s.blo < found.b {
			queue = append(queue, span{s.alo, found.a, s.blo, found.b})
		}
		if found.a+found.size < s.ahi && found.b+found.size < s.bhi {
			queue = append(queue, span{found.a + found.size, s.ahi, found.b + found.size, s.bhi})
		}
	}
	slices.SortFunc(blocks, func(x, y match) int {
		if x.a != y.a {
			return x.a - y.a
		}
		return x.b - y.b
	})
	return blocks
}

func (m *sequenceMatcher) matchedLength() int {
	total := 0
	for _, block := range m.matchingBlocks() {
		total += block.size
	}
	return total
}
