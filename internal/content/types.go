package content

// Achievement is a hackathon win or notable build.
type Achievement struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	GithubURL  string   `json:"githubUrl"`
	URL        string   `json:"url"`
	Stack      []string `json:"stack"`
	IsLive     bool     `json:"isLive,omitempty"`
	IsCodeLive bool     `json:"isCodeLive,omitempty"`
}

// Project shares the achievement record shape.
type Project = Achievement

// Certification is a completed course or exam.
type Certification struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	URL         string   `json:"url"`
	Stack       []string `json:"stack"`
	IsCertified bool     `json:"isCertified,omitempty"`
}

// Experience is one role on the experience page.
type Experience struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	URL          string   `json:"url"`
	Tech         []string `json:"tech"`
	Description  []string `json:"description"`
}

// Badge is a status label shown on a tile.
type Badge string

const (
	BadgeLive      Badge = "live"
	BadgeCode      Badge = "code"
	BadgeCertified Badge = "certified"
)

// Tile is the card every collection page renders.
type Tile struct {
	Title     string
	Subtitle  string
	URL       string
	GithubURL string
	Stack     []string
	Badges    []Badge
}

// Tile converts a to its card.
func (a Achievement) Tile() Tile {
	t := Tile{Title: a.Title, Subtitle: a.Subtitle, URL: a.URL, GithubURL: a.GithubURL, Stack: a.Stack}
	if a.IsLive {
		t.Badges = append(t.Badges, BadgeLive)
	}
	if a.IsCodeLive {
		t.Badges = append(t.Badges, BadgeCode)
	}
	return t
}

// Tile converts c to its card.
func (c Certification) Tile() Tile {
	t := Tile{Title: c.Title, Subtitle: c.Subtitle, URL: c.URL, Stack: c.Stack}
	if c.IsCertified {
		t.Badges = append(t.Badges, BadgeCertified)
	}
	return t
}

// Tiler is implemented by records rendered as tiles.
type Tiler interface {
	Tile() Tile
}

// Tiles converts a slice of records.
func Tiles[T Tiler](items []T) []Tile {
	out := make([]Tile, len(items))
	for i, it := range items {
		out[i] = it.Tile()
	}
	return out
}
