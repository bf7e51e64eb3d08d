// Package dish provides the Dish aggregate: a menu item with price, weight,
// category and preparation time. Orders snapshot dish attributes per line at
// checkout, so the aggregate carries the live menu state only.
package dish
