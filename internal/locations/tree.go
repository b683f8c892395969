// Package locations holds the static division → district → city → area
// hierarchy that constrains the booking address form. The tree is fixed at
// build time; it has no lifecycle.
package locations

type city struct {
	name  string
	areas []string
}

type district struct {
	name   string
	cities []city
}

type division struct {
	name      string
	districts []district
}

// Slices, not maps: option lists must render in a stable order.
var tree = []division{
	{
		name: "Dhaka",
		districts: []district{
			{
				name: "Dhaka",
				cities: []city{
					{name: "Dhaka North", areas: []string{"Uttara", "Mirpur", "Mohakhali"}},
					{name: "Dhaka South", areas: []string{"Dhanmondi", "Jatrabari", "Old Dhaka"}},
				},
			},
			{
				name: "Gazipur",
				cities: []city{
					{name: "Tongi", areas: []string{"Station Road", "Cherag Ali"}},
					{name: "GazipurSadar", areas: []string{"Chowrasta", "Bason"}},
				},
			},
		},
	},
	{
		name: "Chattogram",
		districts: []district{
			{
				name: "Chattogram",
				cities: []city{
					{name: "Pahartali", areas: []string{"Oxygen", "Bayezid"}},
					{name: "Kotwali", areas: []string{"Anderkilla", "Agrabad"}},
				},
			},
			{
				name: "CoxsBazar",
				cities: []city{
					{name: "Sadar", areas: []string{"Kolatoli", "Jhilongja"}},
					{name: "Teknaf", areas: []string{"Shaplapur", "Hnila"}},
				},
			},
		},
	},
	{
		name: "Rajshahi",
		districts: []district{
			{
				name: "Rajshahi",
				cities: []city{
					{name: "Boalia", areas: []string{"Shaheb Bazar", "Laxmipur"}},
					{name: "Motihar", areas: []string{"Kazla", "Talaimari"}},
				},
			},
		},
	},
}

func findDivision(name string) *division {
	for i := range tree {
		if tree[i].name == name {
			return &tree[i]
		}
	}
	return nil
}

func (d *division) findDistrict(name string) *district {
	for i := range d.districts {
		if d.districts[i].name == name {
			return &d.districts[i]
		}
	}
	return nil
}

func (d *district) findCity(name string) *city {
	for i := range d.cities {
		if d.cities[i].name == name {
			return &d.cities[i]
		}
	}
	return nil
}

// Divisions lists every division name.
func Divisions() []string {
	out := make([]string, 0, len(tree))
	for i := range tree {
		out = append(out, tree[i].name)
	}
	return out
}

// Districts lists the districts of a division, or nil for an unknown one.
func Districts(div string) []string {
	d := findDivision(div)
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.districts))
	for i := range d.districts {
		out = append(out, d.districts[i].name)
	}
	return out
}

func Cities(div, dist string) []string {
	d := findDivision(div)
	if d == nil {
		return nil
	}
	ds := d.findDistrict(dist)
	if ds == nil {
		return nil
	}
	out := make([]string, 0, len(ds.cities))
	for i := range ds.cities {
		out = append(out, ds.cities[i].name)
	}
	return out
}

func Areas(div, dist, cty string) []string {
	d := findDivision(div)
	if d == nil {
		return nil
	}
	ds := d.findDistrict(dist)
	if ds == nil {
		return nil
	}
	c := ds.findCity(cty)
	if c == nil {
		return nil
	}
	out := make([]string, len(c.areas))
	copy(out, c.areas)
	return out
}
