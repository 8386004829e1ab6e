package mission

// Characters is the fixed roster of Chicago personalities who might
// send you out for corner slices. Order matters: indices feed the
// seeded draw in Generate.
var Characters = []string{
	"Jake and Elwood",
	"The Empire Carpet Guy",
	"Aunt Seana",
	"Cheryl Scott",
	"Tom Skilling",
	"Abe Froman",
	"Uncle Buck",
	"Roxie Hart",
	"Eddie and Jobo",
	"Glen Lerner",
	"Lin Brehmer",
}

// Locations is the fixed list of Chicago neighborhoods used for both
// trail endpoints. Order matters for the same reason as Characters.
var Locations = []string{
	"O'Hare", "Rogers Park", "West Ridge", "Lincoln Square", "Edgewater",
	"Andersonville", "Uptown", "Buena Park", "North Park", "Albany Park",
	"Forest Glen", "Norwood Park", "Jefferson Park", "Bowmanville", "North Center",
	"Lake View", "Lincoln Park", "Avondale", "Logan Square", "Portage Park",
	"Irving Park", "Dunning", "Montclare", "Belmont Cragin", "Hermosa",
	"West Town", "Austin", "West Garfield Park", "East Garfield Park",
	"Near West Side", "North Lawndale", "South Lawndale", "Old Town",
	"The Gold Coast", "River North", "The Loop", "Near South Side", "Pilsen",
	"Douglas", "Oakland", "Fuller Park", "Grand Boulevard", "Kenwood",
	"Washington Park", "Hyde Park", "Woodlawn", "South Shore", "Bridgeport",
	"Chinatown", "New City", "West Elsdon", "Gage Park", "Brighton Park",
	"McKinley Park", "Garfield Ridge", "Archer Heights", "Clearing", "West Lawn",
	"Chicago Lawn", "West Englewood", "Englewood", "Greater Grand Crossing",
	"Ashburn", "Auburn Gresham", "Beverly", "Washington Heights", "Mount Greenwood",
	"Morgan Park", "Chatham", "Avalon Park", "South Chicago", "Burnside",
	"Calumet Heights", "Roseland", "Pullman", "South Deering", "East Side",
	"West Pullman", "Riverdale", "Hegewisch",
}
