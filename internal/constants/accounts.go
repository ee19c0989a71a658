package constants

const (
	MaxNameLen = 100

	DefaultCurrencySymbol = "$"
	DefaultDBName         = "coin.db"
	AppName               = "coin"
)
