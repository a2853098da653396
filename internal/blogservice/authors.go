package blogservice

// Authors is the fixed author roster shown in the authoring form. Posts store
// a snapshot of the selected entry rather than a live reference.
var Authors = []Author{
	{ID: 1, Name: "Maya Ellison", Role: "Creative Director", PhotoURL: "https://res.imghost.example/team/maya.jpg"},
	{ID: 2, Name: "Tomas Reiner", Role: "Lead Engineer", PhotoURL: "https://res.imghost.example/team/tomas.jpg"},
	{ID: 3, Name: "Priya Nand", Role: "Content Strategist", PhotoURL: "https://res.imghost.example/team/priya.jpg"},
	{ID: 4, Name: "Jon Akerlund", Role: "UX Designer", PhotoURL: "https://res.imghost.example/team/jon.jpg"},
}

// AuthorByID returns the roster entry for id, or false when the id is not on
// the roster.
func AuthorByID(id int) (Author, bool) {
	for _, a := range Authors {
		if a.ID == id {
			return a, true
		}
	}

	return Author{}, false
}
