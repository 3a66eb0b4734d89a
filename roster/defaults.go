package roster

// Built-in sample data used when no roster source is configured or the
// configured source cannot be loaded. Kept as source literals so the
// binary works with zero external files.

var defaultNames = []string{
	"Avery",
	"Blake",
	"Casey",
	"Devon",
	"Ellis",
	"Frankie",
	"Harper",
	"Indigo",
	"Jordan",
	"Kendall",
	"Logan",
	"Morgan",
}

var defaultBanners = []string{
	"Spin to win!",
	"Everybody gets a turn",
	"Feeling lucky?",
	"Round and round it goes",
	"Winner picks the playlist",
	"No take-backs",
}
