package space

import "image/color"

type Category struct {
	Name  string
	Items []string
	Color color.RGBA
}

var (
	Animals  = Category{Name: "animals", Items: []string{"dog", "cat", "bird", "fish", "rabbit", "horse"}, Color: color.RGBA{0x31, 0x82, 0xbd, 0xff}}
	Vehicles = Category{Name: "vehicles", Items: []string{"car", "boat", "plane", "train", "bus", "truck"}, Color: color.RGBA{0x31, 0xa3, 0x54, 0xff}}
	Food     = Category{Name: "food", Items: []string{"apple", "banana", "orange", "pizza", "burger", "pasta"}, Color: color.RGBA{0xe6, 0x55, 0x0d, 0xff}}
	Nature   = Category{Name: "nature", Items: []string{"mountain", "ocean", "forest", "river", "desert", "cloud"}, Color: color.RGBA{0x75, 0x6b, 0xb1, 0xff}}
)

// DefaultCategories returns the built-in category table in rendering order.
func DefaultCategories() []Category {
	return []Category{Animals, Vehicles, Food, Nature}
}

// Lookup finds the category an item belongs to.
func Lookup(categories []Category, item string) (Category, bool) {
	for _, c := range categories {
		for _, it := range c.Items {
			if it == item {
				return c, true
			}
		}
	}
	return Category{}, false
}

// ColorOf returns the item's category color, falling back to grey.
func ColorOf(categories []Category, item string) color.RGBA {
	if c, ok := Lookup(categories, item); ok {
		return c.Color
	}
	return color.RGBA{0x88, 0x88, 0x88, 0xff}
}
