package trail

// questionsFetchedMsg is sent when the day's question batch fetch finishes.
type questionsFetchedMsg struct {
	Err error
}

// revealDoneMsg is sent when the answer reveal pause ends.
type revealDoneMsg struct{}
