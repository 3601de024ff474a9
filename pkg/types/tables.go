package types

// Standard table names in the parlor database.
const (
	FlavorsTable     = "flavors"
	IngredientsTable = "ingredients"
	AllergensTable   = "allergens"
	CartTable        = "cart"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	FlavorsTable,
	IngredientsTable,
	AllergensTable,
	CartTable,
}
