package types

// PlacementOrder names a level-generation placement strategy.
type PlacementOrder string

const (
	PlacementRandom  PlacementOrder = "random"
	PlacementLinear  PlacementOrder = "linear"
	PlacementCluster PlacementOrder = "cluster"
)

// LetterSort names a letter scrambling policy applied before placement.
type LetterSort string

const (
	LetterSortDirect   LetterSort = "direct"
	LetterSortKeepBase LetterSort = "keep_base"
	LetterSortMirror   LetterSort = "mirror"
	LetterSortRandom   LetterSort = "random"
)

type Difficulty struct {
	Order   PlacementOrder `json:"order" yaml:"order"`
	Letters LetterSort     `json:"letters" yaml:"letters"`
	Colored *bool          `json:"colored,omitempty" yaml:"colored,omitempty"`
	Follow  *bool          `json:"follow,omitempty" yaml:"follow,omitempty"`
}

type LevelConfig struct {
	ID         int        `json:"id" yaml:"id"`
	Cols       int        `json:"cols" yaml:"cols"`
	Rows       int        `json:"rows" yaml:"rows"`
	Words      []string   `json:"words" yaml:"words"`
	Follow     *bool      `json:"follow,omitempty" yaml:"follow,omitempty"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
}

// PlacementOrder returns the configured order, defaulting to random.
func (l LevelConfig) PlacementOrder() PlacementOrder {
	if l.Difficulty.Order == "" {
		return PlacementRandom
	}
	return l.Difficulty.Order
}

// LetterSort returns the configured sort mode, defaulting to direct.
func (l LevelConfig) LetterSort() LetterSort {
	if l.Difficulty.Letters == "" {
		return LetterSortDirect
	}
	return l.Difficulty.Letters
}

// Colored reports whether the level starts with word colouring on.
func (l LevelConfig) Colored() bool {
	if l.Difficulty.Colored == nil {
		return true
	}
	return *l.Difficulty.Colored
}

// FollowOrder reports whether target words keep their configured order.
func (l LevelConfig) FollowOrder() bool {
	if l.Difficulty.Follow != nil {
		return *l.Difficulty.Follow
	}
	if l.Follow != nil {
		return *l.Follow
	}
	return true
}

// TileView is one tile as the presentation layer draws it.
type TileView struct {
	ID        string `json:"id"`
	Char      string `json:"char"`
	Column    int    `json:"column"`
	Position  int    `json:"position"`
	WordIndex int    `json:"wordIndex"`
	State     string `json:"state"`
	Highlight string `json:"highlight,omitempty"`
	Color     string `json:"color,omitempty"`
}

type WordView struct {
	Text     string `json:"text"`
	Found    bool   `json:"found"`
	Revealed bool   `json:"revealed"`
	Color    string `json:"color"`
}

type SessionView struct {
	LevelID        int          `json:"levelId"`
	LevelIndex     int          `json:"levelIndex"`
	LevelCount     int          `json:"levelCount"`
	Rows           int          `json:"rows"`
	Columns        [][]TileView `json:"columns"`
	CurrentWord    string       `json:"currentWord"`
	Classification string       `json:"classification"`
	Words          []WordView   `json:"words"`
	HiddenWords    []string     `json:"hiddenWords"`
	FoundCount     int          `json:"foundCount"`
	TotalCount     int          `json:"totalCount"`
	Processing     bool         `json:"processing"`
	Colored        bool         `json:"colored"`
	Won            bool         `json:"won"`
	HintEnabled    bool         `json:"hintEnabled"`
	BonusVisible   bool         `json:"bonusVisible"`
	BonusEnabled   bool         `json:"bonusEnabled"`
	Notice         string       `json:"notice,omitempty"`
}
