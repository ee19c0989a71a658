package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath     string
	DBPath         string
	DBExists       bool // true = Found, false = Not Found
	CurrencySymbol string
	LogLevel       string
	AppDataDir     string
	Accounts       int
	Transactions   int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Currency Symbol", data.CurrencySymbol},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
		{"Accounts", formatID(int64(data.Accounts))},
		{"Transactions", formatID(int64(data.Transactions))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
