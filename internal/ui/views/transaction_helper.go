package views

import (
	"github.com/hance08/coin/internal/store"
)

// SideLabel names what a row means for its own account.
func SideLabel(e *store.Entry) string {
	incoming := !e.Amount.IsNegative()

	switch {
	case e.IsTransfer() && incoming:
		return "transfer in"
	case e.IsTransfer():
		return "transfer out"
	case incoming:
		return "deposit"
	default:
		return "withdrawal"
	}
}

// accountLabel falls back to the id when an account has no known name.
func accountLabel(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "#" + formatID(id)
}
