package fintrack

// Settings is the user preferences singleton: the display currency, the
// conversion rates used to render amounts, and an optional monthly budget cap.
type Settings struct {
	// BaseCurrency is the code amounts are displayed in.
	BaseCurrency string `json:"baseCurrency"`
	// Rates maps a currency code to the multiplier applied to stored amounts
	// to express them in that currency.
	Rates map[string]float64 `json:"rates"`
	// BudgetCap is the spending limit; 0 means unset.
	BudgetCap float64 `json:"budgetCap"`
}

// DefaultSettings returns the settings used when no prior data exists or the
// stored settings cannot be read.
func DefaultSettings() Settings {
	return Settings{
		BaseCurrency: "ZAR",
		Rates:        map[string]float64{"USD": 0.055, "EUR": 0.051},
		BudgetCap:    0,
	}
}

// SettingsPatch is a partial settings update. Nil fields keep the prior
// value; Rates, when set, replaces the whole mapping (shallow merge).
type SettingsPatch struct {
	BaseCurrency *string
	Rates        map[string]float64
	BudgetCap    *float64
}

// merge applies the patch over s and returns the result.
func (p SettingsPatch) merge(s Settings) Settings {
	if p.BaseCurrency != nil {
		s.BaseCurrency = *p.BaseCurrency
	}
	if p.Rates != nil {
		s.Rates = p.Rates
	}
	if p.BudgetCap != nil {
		s.BudgetCap = *p.BudgetCap
	}
	return s
}

// clone returns a copy of the settings with an independent rates map.
func (s Settings) clone() Settings {
	rates := make(map[string]float64, len(s.Rates))
	for code, rate := range s.Rates {
		rates[code] = rate
	}
	s.Rates = rates
	return s
}
