package tree

// Extracted is the set of fields pulled out of a disambiguated address
// tree, in the shape app/models.AddressData is built from.
type Extracted struct {
	Type            string
	StreetNames     []string
	DoorNumberValue string
	DoorNumberUnit  string
	Floor           string
}

// Extract walks a disambiguated type-node (the `simple` / `intersection`
// / `between` node Disambiguate returns) and pulls out its street
// names and optional door-number/floor text.
func Extract(typeNode *Node) Extracted {
	data := Extracted{Type: typeNode.Label}

	for _, comp := range typeNode.FindAny("street_no_num", "street_with_num") {
		first := comp.FirstChild()
		if first != nil && first.Label == "street" {
			data.StreetNames = append(data.StreetNames, first.Text())
		}
	}

	if dv := typeNode.Find("door_number_value"); len(dv) > 0 {
		data.DoorNumberValue = dv[0].Text()
	}
	if du := typeNode.Find("door_number_unit"); len(du) > 0 {
		data.DoorNumberUnit = du[0].Text()
	}
	if fl := typeNode.Find("floor"); len(fl) > 0 {
		data.Floor = fl[0].Text()
	}

	return data
}
