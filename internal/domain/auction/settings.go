package auction

// Documented fallback table for the three global auction parameters.
const (
	DefaultStartingWallet = 10000
	DefaultSquadSize      = 11
	DefaultMinBasePrice   = 500
)

// Settings stores the global auction parameters shared by every team.
type Settings struct {
	StartingWallet int
	SquadSize      int
	MinBasePrice   int
}

func DefaultSettings() Settings {
	return Settings{
		StartingWallet: DefaultStartingWallet,
		SquadSize:      DefaultSquadSize,
		MinBasePrice:   DefaultMinBasePrice,
	}
}

// SettingsFromInput applies the parse-or-default rule: any non-positive
// value falls back to its documented default. This is the only place the
// fallback happens; bid validation always sees a well-formed Settings.
func SettingsFromInput(startingWallet, squadSize, minBasePrice int) Settings {
	out := DefaultSettings()
	if startingWallet > 0 {
		out.StartingWallet = startingWallet
	}
	if squadSize > 0 {
		out.SquadSize = squadSize
	}
	if minBasePrice > 0 {
		out.MinBasePrice = minBasePrice
	}

	return out
}
