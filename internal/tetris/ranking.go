package tetris

// NewRanking create a new ranking
func NewRanking() *Ranking {
	return &Ranking{
		entries: make([]RankEntry, 0, rankingSize),
	}
}

// InsertScore inserts a score into the rankings, returning its 1-based
// place or 0 when it did not make the list
func (ranking *Ranking) InsertScore(name string, newScore int) int {
	for index, entry := range ranking.entries {
		if newScore > entry.Score {
			ranking.slideScores(index)
			ranking.entries[index] = RankEntry{Name: name, Score: newScore}
			return index + 1
		}
	}
	if len(ranking.entries) < rankingSize {
		ranking.entries = append(ranking.entries, RankEntry{Name: name, Score: newScore})
		return len(ranking.entries)
	}
	return 0
}

// slideScores slides the scores down to make room for a new score
func (ranking *Ranking) slideScores(index int) {
	if len(ranking.entries) < rankingSize {
		ranking.entries = append(ranking.entries, RankEntry{})
	}
	for i := len(ranking.entries) - 1; i > index; i-- {
		ranking.entries[i] = ranking.entries[i-1]
	}
}

// Entries returns the ranked scores, best first
func (ranking *Ranking) Entries() []RankEntry {
	entries := make([]RankEntry, len(ranking.entries))
	copy(entries, ranking.entries)
	return entries
}
