package theme

import "github.com/fatih/color"

type builtinTheme struct {
	id  string
	def *Definition
}

func builtin() []builtinTheme {
	return []builtinTheme{
		{id: "dragon-dynasty", def: &Definition{
			Name: "Dragon Dynasty",
			Palette: Palette{
				Title:  []color.Attribute{color.Bold, color.Underline, color.FgRed},
				Accent: []color.Attribute{color.FgYellow},
				Faint:  []color.Attribute{color.Faint},
			},
			CategoryNames: map[string]string{
				"burp":   "Satisfied Belches",
				"fart":   "Aromatic Winds",
				"bug":    "Kitchen Mishaps",
				"coffee": "Tea Ceremonies",
			},
			Phrases: map[string][]string{
				"burp": {
					"A satisfied burp — must've been good food!",
					"Approval from the belly!",
					"Another happy customer sound.",
				},
				"fart": {
					"Kitchen exhaust… from the customer side.",
					"A mysterious aroma escapes the dining hall.",
					"A wandering scent travels past the tables.",
				},
				"bug": {
					"A bug in the kitchen — not the food kind.",
					"Recipe error! Something needs fixing.",
					"This dish was undercooked… in code.",
				},
				"coffee": {
					"Order added to the chef's ledger.",
					"Recorded on today's specials board.",
					"Another entry for the restaurant log.",
				},
				"sass": {
					"A pinch of sass was sprinkled.",
					"Sass logged — served with attitude.",
					"Seasoned with sassiness.",
				},
				"default": {
					"Order added to the chef's ledger.",
					"Recorded on today's specials board.",
					"Another entry for the restaurant log.",
				},
			},
			Notes: map[string]string{
				"burp":   "Many satisfied customers today!",
				"fart":   "Air circulation struggling in the dining hall!",
				"bug":    "Chef requests an urgent code inspection!",
				"coffee": "Staff running on high-octane fuel today!",
			},
			NoteFormat: "High activity in %s today!",
		}},
		{id: "neon-nexus", def: &Definition{
			Name: "Neon Nexus",
			Palette: Palette{
				Title:  []color.Attribute{color.Bold, color.Underline, color.FgHiCyan},
				Accent: []color.Attribute{color.FgHiCyan},
				Faint:  []color.Attribute{color.Faint},
			},
			CategoryNames: map[string]string{
				"burp":   "Audio Packets",
				"fart":   "Gas Leaks",
				"bug":    "System Errors",
				"coffee": "Energy Drinks",
			},
			Phrases: map[string][]string{
				"burp": {
					"Audio packet overflow detected.",
					"Sound wave anomaly registered.",
					"Vocal frequency spike logged.",
				},
				"fart": {
					"Stealth gas leak registered.",
					"Atmospheric disturbance detected.",
					"Bio-emission signal captured.",
				},
				"bug": {
					"Unhandled exception vibes.",
					"System integrity compromised.",
					"Error code: HUMAN_INTERVENTION_REQUIRED",
				},
				"coffee": {
					"Caffeine injection successful.",
					"Processing power increased by 200%.",
					"System alertness level: MAXIMUM",
				},
				"sass": {
					"SASS module injected.",
					"Style attitude recorded.",
					"Sass event committed to memory.",
				},
				"default": {
					"Event synced to mainframe.",
					"Data point logged successfully.",
					"New entry added to database.",
				},
			},
			Notes: map[string]string{
				"burp":   "Audio systems experiencing heavy load.",
				"fart":   "Atmospheric sensors detecting anomalies.",
				"bug":    "System diagnostics required immediately.",
				"coffee": "Energy levels at maximum capacity.",
			},
			NoteFormat: "High activity in %s today!",
		}},
		{id: "forest-grove", def: &Definition{
			Name: "Forest Grove",
			Palette: Palette{
				Title:  []color.Attribute{color.Bold, color.Underline, color.FgGreen},
				Accent: []color.Attribute{color.FgHiGreen},
				Faint:  []color.Attribute{color.Faint},
			},
			CategoryNames: map[string]string{
				"burp":   "Forest Echoes",
				"fart":   "Nature's Whispers",
				"bug":    "Garden Discoveries",
				"coffee": "Morning Dew",
			},
			Phrases: map[string][]string{
				"burp": {
					"A natural release into the forest air.",
					"The earth's satisfaction expressed.",
					"A moment of natural contentment.",
				},
				"fart": {
					"A gentle breeze through the leaves.",
					"Nature's way of expressing itself.",
					"A soft whisper in the grove.",
				},
				"bug": {
					"A discovery along the forest path.",
					"Nature's gentle surprises.",
					"The forest keeps us humble.",
				},
				"coffee": {
					"Freshness added to the morning collection.",
					"Another moment of natural energy.",
					"The forest's vitality preserved.",
				},
				"sass": {
					"A touch of nature's attitude.",
					"Sassiness grows like forest moss.",
					"Attitude added with natural flair.",
				},
				"default": {
					"A moment captured in the forest light.",
					"Nature's rhythm preserved.",
					"Another note in the forest's song.",
				},
			},
			Notes: map[string]string{
				"burp":   "Natural moments of contentment in the grove.",
				"fart":   "Gentle breezes flowing through the forest.",
				"bug":    "Nature's discoveries keeping us grounded.",
				"coffee": "Fresh energy flowing like morning dew.",
			},
			NoteFormat: "Natural activity in %s today!",
		}},
		{id: "ruby-sea", def: &Definition{
			Name: "Ruby Sea",
			Palette: Palette{
				Title:  []color.Attribute{color.Bold, color.Underline, color.FgHiRed},
				Accent: []color.Attribute{color.FgHiBlue},
				Faint:  []color.Attribute{color.Faint},
			},
			CategoryNames: map[string]string{
				"burp":   "Ocean Depths",
				"fart":   "Sea Currents",
				"bug":    "Coral Reefs",
				"coffee": "Pearl Dives",
			},
			Phrases: map[string][]string{
				"burp": {
					"A bubble rises from the depths.",
					"The ocean's breath surfaces.",
					"A current of satisfaction flows.",
				},
				"fart": {
					"A gentle current stirs the waters.",
					"The sea whispers its secrets.",
					"Oceanic winds drift by.",
				},
				"bug": {
					"A treasure discovered in the depths.",
					"The reef reveals its mysteries.",
					"Something glimmers in the abyss.",
				},
				"coffee": {
					"A pearl added to the collection.",
					"Deeper into the ocean we dive.",
					"The sea's bounty increases.",
				},
				"sass": {
					"A sharp current of attitude.",
					"Sass flows like ocean waves.",
					"Attitude as deep as the sea.",
				},
				"default": {
					"Another entry in the captain's log.",
					"The depths record this moment.",
					"A ripple in the Ruby Sea.",
				},
			},
			Notes: map[string]string{
				"burp":   "Bubbles rising from the ocean depths!",
				"fart":   "Currents stirring in the Ruby Sea.",
				"bug":    "Treasures discovered in the coral reefs.",
				"coffee": "Diving deeper into the ocean's bounty.",
			},
			NoteFormat: "Oceanic activity in %s today!",
		}},
	}
}
