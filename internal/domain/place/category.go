package place

// Category is one of the fixed POI search categories.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryGasStation Category = "gas_station"
	CategoryEVCharging Category = "ev_charging"
	CategoryLodging    Category = "lodging"
	CategoryHospital   Category = "hospital"
	CategoryPharmacy   Category = "pharmacy"
	CategoryATM        Category = "atm"
	CategoryParking    Category = "parking"
	CategoryTourist    Category = "tourist"
	CategoryThingsToDo Category = "things_to_do"
	CategoryMuseum     Category = "museum"
	CategoryTransit    Category = "transit"
	CategoryShopping   Category = "shopping"
	CategoryTemple     Category = "temple"
)

// categoryQueries maps each category to the upstream search keywords.
var categoryQueries = map[Category]string{
	CategoryRestaurant: "restaurants food",
	CategoryCafe:       "cafe coffee shop",
	CategoryGasStation: "petrol pump gas station",
	CategoryEVCharging: "ev charging station",
	CategoryLodging:    "hotels lodging",
	CategoryHospital:   "hospitals clinics",
	CategoryPharmacy:   "pharmacy medical store",
	CategoryATM:        "atm bank",
	CategoryParking:    "parking lot",
	CategoryTourist:    "tourist attraction landmark",
	CategoryThingsToDo: "things to do activities entertainment",
	CategoryMuseum:     "museum art gallery heritage",
	CategoryTransit:    "railway station bus stop metro station",
	CategoryShopping:   "shopping mall market bazaar",
	CategoryTemple:     "temple mandir gurudwara mosque church",
}

// IsValid reports whether the category is one of the fixed set.
func (c Category) IsValid() bool {
	_, ok := categoryQueries[c]
	return ok
}

// SearchQuery returns the upstream keyword string for the category, falling
// back to a plain restaurant search for anything outside the fixed set.
func (c Category) SearchQuery() string {
	if q, ok := categoryQueries[c]; ok {
		return q
	}
	return "restaurant"
}

// Categories returns every supported category in declaration order.
func Categories() []Category {
	cats := make([]Category, 0, len(categoryQueries))
	for c := range categoryQueries {
		cats = append(cats, c)
	}
	return cats
}
