// Package catalog holds the static city data backing the search endpoints.
// It is a stand-in for a real places API: stateless, no persistence, no
// ownership concerns. The itinerary engine never reads it — it only feeds
// stop and activity creation forms upstream.
package catalog

// City is a single searchable catalog entry. Popularity is a relative rank
// (higher is more visited); CostIndex is a rough daily-cost indicator on a
// 1–10 scale.
type City struct {
	Name       string
	Country    string
	Popularity int
	CostIndex  int
	Image      string
}

// Cities is the full static catalog, roughly ordered by popularity.
var Cities = []City{
	{Name: "Paris", Country: "France", Popularity: 98, CostIndex: 8, Image: "https://images.example.com/cities/paris.jpg"},
	{Name: "Tokyo", Country: "Japan", Popularity: 96, CostIndex: 7, Image: "https://images.example.com/cities/tokyo.jpg"},
	{Name: "New York", Country: "United States", Popularity: 95, CostIndex: 9, Image: "https://images.example.com/cities/new-york.jpg"},
	{Name: "London", Country: "United Kingdom", Popularity: 94, CostIndex: 9, Image: "https://images.example.com/cities/london.jpg"},
	{Name: "Rome", Country: "Italy", Popularity: 91, CostIndex: 6, Image: "https://images.example.com/cities/rome.jpg"},
	{Name: "Barcelona", Country: "Spain", Popularity: 90, CostIndex: 6, Image: "https://images.example.com/cities/barcelona.jpg"},
	{Name: "Bangkok", Country: "Thailand", Popularity: 89, CostIndex: 3, Image: "https://images.example.com/cities/bangkok.jpg"},
	{Name: "Istanbul", Country: "Turkey", Popularity: 88, CostIndex: 4, Image: "https://images.example.com/cities/istanbul.jpg"},
	{Name: "Dubai", Country: "United Arab Emirates", Popularity: 87, CostIndex: 8, Image: "https://images.example.com/cities/dubai.jpg"},
	{Name: "Singapore", Country: "Singapore", Popularity: 86, CostIndex: 8, Image: "https://images.example.com/cities/singapore.jpg"},
	{Name: "Amsterdam", Country: "Netherlands", Popularity: 84, CostIndex: 7, Image: "https://images.example.com/cities/amsterdam.jpg"},
	{Name: "Lisbon", Country: "Portugal", Popularity: 82, CostIndex: 5, Image: "https://images.example.com/cities/lisbon.jpg"},
	{Name: "Prague", Country: "Czech Republic", Popularity: 81, CostIndex: 4, Image: "https://images.example.com/cities/prague.jpg"},
	{Name: "Kyoto", Country: "Japan", Popularity: 80, CostIndex: 6, Image: "https://images.example.com/cities/kyoto.jpg"},
	{Name: "Sydney", Country: "Australia", Popularity: 79, CostIndex: 8, Image: "https://images.example.com/cities/sydney.jpg"},
	{Name: "Rio de Janeiro", Country: "Brazil", Popularity: 77, CostIndex: 4, Image: "https://images.example.com/cities/rio-de-janeiro.jpg"},
	{Name: "Cape Town", Country: "South Africa", Popularity: 75, CostIndex: 4, Image: "https://images.example.com/cities/cape-town.jpg"},
	{Name: "Marrakech", Country: "Morocco", Popularity: 73, CostIndex: 3, Image: "https://images.example.com/cities/marrakech.jpg"},
	{Name: "Bali", Country: "Indonesia", Popularity: 72, CostIndex: 3, Image: "https://images.example.com/cities/bali.jpg"},
	{Name: "Reykjavik", Country: "Iceland", Popularity: 68, CostIndex: 9, Image: "https://images.example.com/cities/reykjavik.jpg"},
	{Name: "Mexico City", Country: "Mexico", Popularity: 67, CostIndex: 3, Image: "https://images.example.com/cities/mexico-city.jpg"},
	{Name: "Seoul", Country: "South Korea", Popularity: 66, CostIndex: 6, Image: "https://images.example.com/cities/seoul.jpg"},
	{Name: "Vienna", Country: "Austria", Popularity: 65, CostIndex: 6, Image: "https://images.example.com/cities/vienna.jpg"},
	{Name: "Buenos Aires", Country: "Argentina", Popularity: 63, CostIndex: 3, Image: "https://images.example.com/cities/buenos-aires.jpg"},
	{Name: "Hanoi", Country: "Vietnam", Popularity: 61, CostIndex: 2, Image: "https://images.example.com/cities/hanoi.jpg"},
}
