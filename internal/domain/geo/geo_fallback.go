package geo

import "github.com/FACorreiaa/tripcraft-api/internal/types"

// Coordinates for Sri Lankan cities used when the live geocoder is
// unreachable or returns nothing. Keys are canonical city names.
var fallbackCoordinates = map[string]types.GeoPoint{
	"Colombo": {Latitude: 6.9271, Longitude: 79.8612},
	"Kandy": {Latitude: 7.2906, Longitude: 80.6337},
	"Galle": {Latitude: 6.0535, Longitude: 80.2200},
	"Negombo": {Latitude: 7.2090, Longitude: 79.8367},
	"Bentota": {Latitude: 6.4210, Longitude: 79.9988},
	"Hikkaduwa": {Latitude: 6.1390, Longitude: 80.1038},
	"Mirissa": {Latitude: 5.9455, Longitude: 80.4583},
	"Weligama": {Latitude: 5.9743, Longitude: 80.4294},
	"Tangalle": {Latitude: 6.0167, Longitude: 80.7833},
	"Nuwara Eliya": {Latitude: 6.9708, Longitude: 80.7829},
	"Ella": {Latitude: 6.8675, Longitude: 81.0486},
	"Badulla": {Latitude: 6.9895, Longitude: 81.0557},
	"Bandarawela": {Latitude: 6.8256, Longitude: 80.9982},
	"Hatton": {Latitude: 6.8917, Longitude: 80.5958},
	"Sigiriya": {Latitude: 7.9570, Longitude: 80.7603},
	"Dambulla": {Latitude: 7.8567, Longitude: 80.6491},
	"Polonnaruwa": {Latitude: 7.9403, Longitude: 81.0188},
	"Anuradhapura": {Latitude: 8.3114, Longitude: 80.4037},
	"Trincomalee": {Latitude: 8.5874, Longitude: 81.2152},
	"Batticaloa": {Latitude: 7.7167, Longitude: 81.7000},
	"Pasikudah": {Latitude: 7.9347, Longitude: 81.5677},
	"Arugam Bay": {Latitude: 6.8385, Longitude: 81.8352},
	"Jaffna": {Latitude: 9.6615, Longitude: 80.0255},
	"Mannar": {Latitude: 8.9814, Longitude: 79.9044},
	"Vavuniya": {Latitude: 8.7543, Longitude: 80.4981},
	"Yala": {Latitude: 6.3833, Longitude: 81.5167},
	"Udawalawe": {Latitude: 6.4435, Longitude: 80.8747},
	"Wilpattu": {Latitude: 8.4500, Longitude: 80.0000},
	"Kitulgala": {Latitude: 6.9894, Longitude: 80.4175},
	"Ratnapura": {Latitude: 6.6828, Longitude: 80.3992},
	"Kalutara": {Latitude: 6.5831, Longitude: 79.9593},
	"Beruwala": {Latitude: 6.4733, Longitude: 79.9844},
	"Chilaw": {Latitude: 7.5758, Longitude: 79.7956},
	"Puttalam": {Latitude: 8.0362, Longitude: 79.8283},
	"Matara": {Latitude: 5.9485, Longitude: 80.5353},
	"Hambantota": {Latitude: 6.1240, Longitude: 81.1185},
	"Ampara": {Latitude: 7.2833, Longitude: 81.6667},
	"Monaragala": {Latitude: 6.8728, Longitude: 81.3506},
	"Kurunegala": {Latitude: 7.4867, Longitude: 80.3647},
	"Kegalle": {Latitude: 7.2533, Longitude: 80.3464},
	"Matale": {Latitude: 7.4675, Longitude: 80.6234},
}
