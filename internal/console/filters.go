package console

import (
	"fmt"
	"strings"

	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// Greeting opens every round of questions
const Greeting = "Hello! Let's explore some US bikeshare data!"

var separator = strings.Repeat("-", 40)

// Filters asks for the city, month and day to analyze and echoes each
// confirmed choice
func (p *Prompter) Filters() (trips.Filter, error) {
	p.Println(Greeting)

	cityName, err := p.Choose("Which city would you like to analyze?", trips.CityNames())
	if err != nil {
		return trips.Filter{}, err
	}
	city, ok := trips.ParseCity(cityName)
	if !ok {
		return trips.Filter{}, fmt.Errorf("unexpected city %q", cityName)
	}
	p.Println("The city name is:", city)

	monthName, err := p.Choose("Which month would you like to filter by?", trips.MonthFilterNames())
	if err != nil {
		return trips.Filter{}, err
	}
	month, _ := trips.ParseMonthFilter(monthName)
	p.Println("The month is:", month)

	dayName, err := p.Choose("Which day would you like to filter by?", trips.DayFilterNames())
	if err != nil {
		return trips.Filter{}, err
	}
	day, _ := trips.ParseDayFilter(dayName)
	p.Println("The day is:", day)

	p.Println(separator)

	return trips.Filter{
		City:  city,
		Month: month,
		Day:   day,
	}, nil
}
