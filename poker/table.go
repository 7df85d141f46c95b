package poker

import "fmt"

// TableSeats is the number of physical seats on the pictured table.
const TableSeats = 6

// rolesFromButton is the clockwise role order starting at the button.
var rolesFromButton = [TableSeats]Position{BTN, SB, BB, UTG, HJ, CO}

// Layout describes one of the six table images and who sits where.
//
// Physical seats are numbered clockwise: 6 bottom-left, 1 top-left, 2 top-middle,
// 3 top-right, 4 bottom-right, 5 bottom-middle.
type Layout struct {
	ButtonSeat   int    // selector value 1..6
	Name         string // "Button on seat N"
	Image        string // image file name
	PhysicalSeat int    // physical seat holding the button
	Roles        [TableSeats]Position
}

// LayoutFor returns the layout for a button selector value in 1..6.
func LayoutFor(buttonSeat int) (Layout, error) {
	if buttonSeat < 1 || buttonSeat > TableSeats {
		return Layout{}, fmt.Errorf("button seat %d out of range 1..%d", buttonSeat, TableSeats)
	}

	physical := buttonSeat - 1
	if buttonSeat == 1 {
		physical = TableSeats
	}

	l := Layout{
		ButtonSeat:   buttonSeat,
		Name:         fmt.Sprintf("Button on seat %d", buttonSeat),
		Image:        fmt.Sprintf("poker_table_pot_btn_chips%d.png", buttonSeat),
		PhysicalSeat: physical,
	}
	for seat := 1; seat <= TableSeats; seat++ {
		offset := (seat - physical + TableSeats) % TableSeats
		l.Roles[seat-1] = rolesFromButton[offset]
	}
	return l, nil
}

// Role returns the position sitting in a physical seat (1..6).
func (l Layout) Role(seat int) (Position, bool) {
	if seat < 1 || seat > TableSeats {
		return 0, false
	}
	return l.Roles[seat-1], true
}

// SeatOf returns the physical seat (1..6) occupied by a position.
func (l Layout) SeatOf(p Position) int {
	for i, role := range l.Roles {
		if role == p {
			return i + 1
		}
	}
	return 0
}
