package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	// Amounts carry at most this many fraction digits
	AmountPlaces = 2

	TransferCommentFormat = "Transfer (%s): %s"
)
