package trips

// City identifies one of the supported bikeshare systems
type City int

const (
	Chicago City = iota + 1
	NewYorkCity
	Washington
)

type cityInfo struct {
	name string
	file string
}

var cityTable = map[City]cityInfo{
	Chicago:     {name: "Chicago", file: "chicago.csv"},
	NewYorkCity: {name: "New York City", file: "new_york_city.csv"},
	Washington:  {name: "Washington", file: "washington.csv"},
}

// Cities returns all supported cities in display order
func Cities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// CityNames returns the display names of all supported cities
func CityNames() []string {
	cities := Cities()
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.String())
	}
	return names
}

// ParseCity matches an already normalized name against the supported cities
func ParseCity(name string) (City, bool) {
	for _, c := range Cities() {
		if cityTable[c].name == name {
			return c, true
		}
	}
	return 0, false
}

func (c City) String() string {
	info, ok := cityTable[c]
	if !ok {
		return "Unknown"
	}
	return info.name
}

// DefaultFile returns the CSV file name the city's trips are stored in
func (c City) DefaultFile() string {
	return cityTable[c].file
}

// Valid reports whether c is one of the supported cities
func (c City) Valid() bool {
	_, ok := cityTable[c]
	return ok
}
