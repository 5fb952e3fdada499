package average

type View struct {
	From    string
	To      string
	Series  string
	Weeks   int
	Average float64
	Cached  bool
}
