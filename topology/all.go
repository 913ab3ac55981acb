package topology

// ByName returns the face landmark group with the given name.
func ByName(name string) (Group, bool) {
	for _, g := range FaceLandmark {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// TotalSegments returns the number of line segments over all groups.
func TotalSegments(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Segments()
	}
	return total
}
