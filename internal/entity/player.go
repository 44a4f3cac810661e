package entity

type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Symbol     Symbol `json:"symbol"`
	IsComputer bool   `json:"is_computer,omitempty"`
}

func NewPlayer(id, name string, symbol Symbol) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Symbol: symbol,
	}
}

func NewComputerPlayer(id, name string, symbol Symbol) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Symbol:     symbol,
		IsComputer: true,
	}
}
