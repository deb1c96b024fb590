package page

// Marketing copy for the landing screen. Static configuration, no logic
var (
	badgeText = " NEW  Introducing terra.core "

	headlineTop    = "Intelligence for"
	headlineBottom = "a Living Planet"

	subCopy = "Planet-scale models fuse satellite, climate and sensor feeds into one" +
		" living picture of Earth — so teams act before change becomes crisis."

	features = []feature{
		{"Climate Foresight", "Regional climate shifts, seasons ahead"},
		{"Ecosystem Watch", "Forests, oceans and ice in near real time"},
		{"Grid Harmony", "Renewable supply balanced against live demand"},
	}

	stats = []stat{
		{"12 PB", "data / day"},
		{"140+", "earth models"},
		{"8", "cities linked"},
		{"99.99%", "uptime"},
	}

	footerText = "© 2026 Terraglow Labs · AI for Earth"
)

type feature struct {
	title string
	desc  string
}

type stat struct {
	value string
	label string
}
