package tui

type state int

const (
	homeState state = iota
	searchState
	detailState
	errorState
)
