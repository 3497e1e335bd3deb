package registration

// Region is a state of origin. The set of valid regions is closed; see Regions.
type Region string

// The 36 states and the Federal Capital Territory, in display order.
var regions = []Region{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
	"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "FCT", "Gombe", "Imo",
	"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos", "Nasarawa",
	"Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers", "Sokoto", "Taraba",
	"Yobe", "Zamfara",
}

var regionSet = func() map[Region]struct{} {
	set := make(map[Region]struct{}, len(regions))
	for _, r := range regions {
		set[r] = struct{}{}
	}
	return set
}()

// Regions returns every valid region in display order.
// The returned slice is a copy and may be modified by the caller.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// ParseRegion returns the region named s. Matching is exact: no trimming
// and no case folding, since the value always comes from a closed picker.
func ParseRegion(s string) (Region, bool) {
	r := Region(s)
	return r, r.Valid()
}

// Valid reports whether r is a member of the region enumeration.
func (r Region) Valid() bool {
	_, ok := regionSet[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}
