package page

func testDocument(width float64) *Document {
	return NewDocument([]SectionSpec{
		{ID: "home", Height: 600},
		{ID: "about", Height: 500},
		{ID: "experience", Height: 800},
		{ID: "contact", Height: 400},
	}, 200, width)
}
