package records

// ExampleStudents returns the demo roster used by the "load example data"
// action in the interactive flow.
func ExampleStudents() []Student {
	return []Student{
		{LastName: "Mutie", FirstName: "Josiah"},
		{LastName: "Kanziga", FirstName: "Belise"},
		{LastName: "Uwituze", FirstName: "Djadida"},
		{LastName: "Nizeyimana", FirstName: "Patrick"},
		{LastName: "Kejang", FirstName: "Kutlo"},
	}
}

// ExampleCourses returns the demo course list that pairs with ExampleStudents.
func ExampleCourses() []string {
	return []string{
		"Python Programming",
		"Data Science",
		"Machine Learning",
		"Statistical Methods",
		"Research Project",
	}
}
