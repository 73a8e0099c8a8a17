package measurements

// DefaultStations is used when no station file is given.
var DefaultStations = []Station{
	{Name: "Abha", Mean: 18.0},
	{Name: "Abidjan", Mean: 26.0},
	{Name: "Abéché", Mean: 29.4},
	{Name: "Accra", Mean: 26.4},
	{Name: "Addis Ababa", Mean: 16.0},
	{Name: "Adelaide", Mean: 17.3},
	{Name: "Aden", Mean: 29.1},
	{Name: "Albuquerque", Mean: 14.0},
	{Name: "Alice Springs", Mean: 21.0},
	{Name: "Amsterdam", Mean: 10.2},
	{Name: "Anadyr", Mean: -6.9},
	{Name: "Anchorage", Mean: 2.8},
	{Name: "Arkhangelsk", Mean: 1.3},
	{Name: "Athens", Mean: 19.2},
	{Name: "Baghdad", Mean: 22.77},
	{Name: "Bangkok", Mean: 28.6},
	{Name: "Bergen", Mean: 7.7},
	{Name: "Berlin", Mean: 10.3},
	{Name: "Bouaké", Mean: 26.0},
	{Name: "Bridgetown", Mean: 27.0},
	{Name: "Bulawayo", Mean: 18.9},
	{Name: "Cabo San Lucas", Mean: 23.9},
	{Name: "Calgary", Mean: 4.4},
	{Name: "Cape Town", Mean: 16.2},
	{Name: "Conakry", Mean: 26.4},
	{Name: "Cracow", Mean: 8.3},
	{Name: "Dikson", Mean: -11.1},
	{Name: "Dodoma", Mean: 22.7},
	{Name: "Hamburg", Mean: 9.7},
	{Name: "Istanbul", Mean: 13.9},
	{Name: "Jakarta", Mean: 26.7},
	{Name: "Kuopio", Mean: 3.4},
	{Name: "La Ceiba", Mean: 26.2},
	{Name: "Oslo", Mean: 5.7},
	{Name: "Palembang", Mean: 27.3},
	{Name: "Petropavlovsk-Kamchatsky", Mean: 1.9},
	{Name: "Roseau", Mean: 26.2},
	{Name: "St. John's", Mean: 5.0},
	{Name: "São Paulo", Mean: 19.7},
	{Name: "Tokyo", Mean: 15.4},
	{Name: "Yakutsk", Mean: -8.8},
	{Name: "Zürich", Mean: 9.3},
}
