package models

// Car body types accepted by the catalog.
const (
	CarTypeSedan = "SEDAN"
	CarTypeSUV   = "SUV"
	CarTypeWagon = "WAGON"
)

type CarMake struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CarModel struct {
	ID        int    `json:"id"`
	CarMakeID int    `json:"car_make_id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // SEDAN | SUV | WAGON
	Year      int    `json:"year"`
}

// CarListing is one row of the /cars response.
type CarListing struct {
	CarModel string `json:"CarModel"`
	CarMake  string `json:"CarMake"`
}

// MakeSeed is one make and its models in the initial catalog.
type MakeSeed struct {
	Make   CarMake
	Models []CarModel
}
