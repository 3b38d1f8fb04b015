package mapper

// Canonical tokens understood by the prescription grammar. Lookups that miss
// fall back to these defaults rather than failing.
const (
	DefaultDosage    = "One"
	DefaultUnit      = "Tablet"
	DefaultFrequency = ""
	DefaultBodyPart  = ""
)

var dosageTokens = map[string]string{
	"1": "One",
	"2": "Two",
	"3": "Three",
	"4": "Four",
}

var unitTokens = map[string]string{
	"tablet": "Tablet",
	"drop":   "Drop",
	"drops":  "Drop",
}

var frequencyTokens = map[string]string{
	"once a day":        "OnceADay",
	"twice a day":       "TwiceADay",
	"three times a day": "ThreeTimesADay",
	"every 6 hours":     "Every6Hours",
}

var bodyPartTokens = map[string]string{
	"eye":  "AffectedEye",
	"oral": "Oral",
	"ear":  "AffectedEar",
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}
