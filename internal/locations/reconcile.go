package locations

// Selection is the four-level choice the booking form carries.
type Selection struct {
	Division string
	District string
	City     string
	Area     string
}

// DefaultSelection is the starting path shown on a fresh booking form.
func DefaultSelection() Selection {
	return Selection{
		Division: "Dhaka",
		District: "Dhaka",
		City:     "Dhaka North",
		Area:     "Uttara",
	}
}

// Reconcile snaps a selection back onto a valid path in the tree. The
// cascade runs top-down: a changed division invalidates the district, which
// invalidates the city, which invalidates the area. An invalid child falls
// back to the first option of its new parent, so the result is always
// submittable. Applying Reconcile twice yields the same selection.
func Reconcile(sel Selection) Selection {
	if !contains(Divisions(), sel.Division) {
		sel.Division = Divisions()[0]
	}

	districts := Districts(sel.Division)
	if !contains(districts, sel.District) {
		sel.District = first(districts)
	}

	cities := Cities(sel.Division, sel.District)
	if !contains(cities, sel.City) {
		sel.City = first(cities)
	}

	areas := Areas(sel.Division, sel.District, sel.City)
	if !contains(areas, sel.Area) {
		sel.Area = first(areas)
	}

	return sel
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func first(set []string) string {
	if len(set) == 0 {
		return ""
	}
	return set[0]
}
