package catalog

// Quality grades an individual item. The order of declaration is the priority
// order used when the fancy inventory picks which item to hand out first:
// a higher value always outranks a lower one.
type Quality int

const (
	Regular Quality = iota
	Silver
	Gold
	Iridium
)

var qualityNames = map[Quality]string{
	Regular: "REGULAR",
	Silver:  "SILVER",
	Gold:    "GOLD",
	Iridium: "IRIDIUM",
}

// Qualities returns all quality grades in ascending order.
func Qualities() []Quality {
	return []Quality{Regular, Silver, Gold, Iridium}
}

func (q Quality) String() string {
	return qualityNames[q]
}
