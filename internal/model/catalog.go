package model

// mockFoods is the fixed catalog table, in display order.
var mockFoods = []Food{
	{FoodID: "1", GlutenFree: GlutenInfo{Gluten: GlutenNo, Description: "Rice is naturally gluten-free."}},
	{FoodID: "2", GlutenFree: GlutenInfo{Gluten: GlutenYes, Description: "Wheat contains gluten."}},
}

// MockFoods returns a copy of the mock catalog table.
func MockFoods() []Food {
	foods := make([]Food, len(mockFoods))
	copy(foods, mockFoods)
	return foods
}
