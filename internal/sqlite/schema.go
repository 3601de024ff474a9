// Package sqlite implements the SQLite storage engine for the parlor catalog
// and cart.
package sqlite

// Schema DDL for all tables. Every statement is idempotent so the schema can
// be applied on each start, including against files created by older builds.
const (
	createFlavors = `CREATE TABLE IF NOT EXISTS flavors (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    is_seasonal INTEGER
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    quantity INTEGER,
    unit TEXT
);`

	createAllergens = `CREATE TABLE IF NOT EXISTS allergens (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	// flavor_id is declared as a foreign key but foreign_keys stays off, so
	// a cart line may name a flavor that does not exist.
	createCart = `CREATE TABLE IF NOT EXISTS cart (
    id INTEGER PRIMARY KEY,
    flavor_id INTEGER,
    FOREIGN KEY (flavor_id) REFERENCES flavors (id)
);`
)

// Index DDL.
const (
	idxFlavorsName  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_flavors_name ON flavors(name);`
	idxCartFlavorID = `CREATE INDEX IF NOT EXISTS idx_cart_flavor_id ON cart(flavor_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFlavors,
	createIngredients,
	createAllergens,
	createCart,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxFlavorsName,
	idxCartFlavorID,
}
