package recipe

// Categories is the browsing vocabulary the catalog is organized by.
var Categories = []Category{
	{ID: "before-payday", Name: "Before Payday", Description: "Stretch what's left in your fridge/pantry"},
	{ID: "cheap-cheerful", Name: "Cheap & Cheerful", Description: "Comfort food that's still low-cost"},
	{ID: "fridge-cleanout", Name: "Fridge Clean-Out", Description: "Flexible recipes for whatever you've got"},
	{ID: "date-night", Name: "Date Night", Description: "Impressive meals on a budget"},
	{ID: "flatmate-feast", Name: "Flatmate Feast", Description: "Crowd-pleasers that scale cheaply"},
	{ID: "meet-parents", Name: "Meet the Parents", Description: "Polished dishes without the price tag"},
	{ID: "10-minutes", Name: "10 Minutes", Description: "Fast meals for busy days"},
	{ID: "one-pan", Name: "One Pan", Description: "Minimal washing up"},
	{ID: "no-stove", Name: "No Stove", Description: "Microwave and no-cook meals"},
	{ID: "energy-boost", Name: "Energy Boost", Description: "Fuel for long days"},
	{ID: "veggie-first", Name: "Veggie First", Description: "Vegetable-forward plates"},
	{ID: "feel-good", Name: "Feel Good", Description: "Nourishing comfort"},
	{ID: "meal-prep", Name: "Meal Prep", Description: "Cook once, eat all week"},
	{ID: "bake-relax", Name: "Bake & Relax", Description: "Low-stress baking"},
	{ID: "diy-takeout", Name: "DIY Takeout", Description: "Takeaway favorites at home"},
}

// SeedLegacy is the bundled legacy catalog, migrated into the store on first
// run when no enhanced recipes exist yet.
var SeedLegacy = []Legacy{
	{
		ID:            "1",
		Name:          "Ultimate Ramen Upgrade",
		Description:   "Transform instant ramen into a restaurant-worthy meal with simple additions",
		Image:         "https://images.pexels.com/photos/884600/pexels-photo-884600.jpeg",
		PrepTime:      5,
		CookTime:      10,
		Servings:      1,
		Difficulty:    DifficultyEasy,
		EstimatedCost: 2.50,
		CategoryID:    "10-minutes",
		Ingredients: []Ingredient{
			{Name: "Instant ramen packet", Amount: "1", Unit: "pack", Cost: 0.50},
			{Name: "Egg", Amount: "1", Unit: "large", Cost: 0.25},
			{Name: "Green onions", Amount: "2", Unit: "stalks", Cost: 0.30},
			{Name: "Soy sauce", Amount: "1", Unit: "tbsp", Cost: 0.05},
			{Name: "Sesame oil", Amount: "1", Unit: "tsp", Cost: 0.10},
			{Name: "Frozen vegetables", Amount: "0.25", Unit: "cup", Cost: 0.40},
			{Name: "Sriracha", Amount: "to taste", Unit: "", Cost: 0.05},
		},
		Instructions: []string{
			"Boil water and cook ramen noodles for 2 minutes",
			"Crack egg into the boiling water and let it poach for 1 minute",
			"Add frozen vegetables and cook for another minute",
			"Stir in half the seasoning packet, soy sauce, and sesame oil",
			"Top with chopped green onions and a drizzle of sriracha",
			"Serve immediately while hot",
		},
		Tags:     []string{"quick", "comfort food", "asian-inspired", "one-pot"},
		Dietary:  []string{},
		MealType: []string{"lunch", "dinner"},
		Tips: []string{
			"Buy eggs in bulk for cheaper protein",
			"Frozen vegetables are often cheaper than fresh and last longer",
			"Save money by buying generic ramen brands",
		},
	},
	{
		ID:            "2",
		Name:          "Loaded Baked Potato",
		Description:   "A filling, customizable meal that uses pantry staples",
		Image:         "https://images.pexels.com/photos/5949888/pexels-photo-5949888.jpeg",
		PrepTime:      5,
		CookTime:      45,
		Servings:      1,
		Difficulty:    DifficultyEasy,
		EstimatedCost: 3.00,
		CategoryID:    "cheap-cheerful",
		Ingredients: []Ingredient{
			{Name: "Large potato", Amount: "1", Unit: "whole", Cost: 0.75},
			{Name: "Butter", Amount: "1", Unit: "tbsp", Cost: 0.15},
			{Name: "Shredded cheese", Amount: "0.25", Unit: "cup", Cost: 0.60},
			{Name: "Canned beans", Amount: "0.5", Unit: "cup", Cost: 0.40},
			{Name: "Greek yogurt", Amount: "2", Unit: "tbsp", Cost: 0.30},
			{Name: "Green onions", Amount: "1", Unit: "stalk", Cost: 0.15},
			{Name: "Salt and pepper", Amount: "1", Unit: "pinch", Cost: 0.02},
		},
		Instructions: []string{
			"Preheat oven to 425°F (220°C)",
			"Pierce potato with fork and bake for 45 minutes until tender",
			"Heat beans in microwave or small pot",
			"Cut open potato and fluff with fork",
			"Add butter, salt, and pepper to potato flesh",
			"Top with warm beans, cheese, yogurt, and green onions",
			"Serve immediately",
		},
		Tags:     []string{"filling", "comfort food", "customizable", "vegetarian"},
		Dietary:  []string{"vegetarian"},
		MealType: []string{"lunch", "dinner"},
		Tips: []string{
			"Buy potatoes in bulk bags for better value",
			"Use whatever toppings you have - leftover chili, frozen corn, etc.",
			"Greek yogurt is cheaper than sour cream and healthier",
		},
	},
	{
		ID:            "3",
		Name:          "Pasta Aglio e Olio",
		Description:   "Classic Italian pasta with just garlic, olive oil, and parmesan",
		Image:         "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
		PrepTime:      5,
		CookTime:      15,
		Servings:      2,
		Difficulty:    DifficultyEasy,
		EstimatedCost: 2.25,
		CategoryID:    "date-night",
		Ingredients: []Ingredient{
			{Name: "Spaghetti", Amount: "8", Unit: "oz", Cost: 0.75},
			{Name: "Garlic cloves", Amount: "4", Unit: "cloves", Cost: 0.20},
			{Name: "Olive oil", Amount: "0.25", Unit: "cup", Cost: 0.50},
			{Name: "Red pepper flakes", Amount: "0.5", Unit: "tsp", Cost: 0.05},
			{Name: "Parmesan cheese", Amount: "0.5", Unit: "cup", Cost: 0.60},
			{Name: "Fresh parsley", Amount: "2", Unit: "tbsp", Cost: 0.15},
		},
		Instructions: []string{
			"Cook spaghetti according to package directions, reserve 1 cup pasta water",
			"While pasta cooks, heat olive oil in large pan over medium heat",
			"Add sliced garlic and red pepper flakes, cook until fragrant (1-2 minutes)",
			"Add drained pasta to the pan with garlic oil",
			"Toss with pasta water to create a silky sauce",
			"Remove from heat, add parmesan and parsley",
			"Serve immediately with extra cheese",
		},
		Tags:     []string{"italian", "romantic", "simple", "vegetarian"},
		Dietary:  []string{"vegetarian"},
		MealType: []string{"dinner"},
		Tips: []string{
			"Buy pasta in bulk for better value",
			"Don't let garlic burn or it will taste bitter",
			"Save pasta water - the starch helps create a creamy sauce",
		},
	},
	{
		ID:            "4",
		Name:          "Veggie Fried Rice",
		Description:   "Use up leftover rice and any vegetables you have on hand",
		Image:         "https://images.pexels.com/photos/2456435/pexels-photo-2456435.jpeg",
		PrepTime:      10,
		CookTime:      10,
		Servings:      2,
		Difficulty:    DifficultyEasy,
		EstimatedCost: 3.50,
		CategoryID:    "fridge-cleanout",
		Ingredients: []Ingredient{
			{Name: "Cooked rice (day-old preferred)", Amount: "2", Unit: "cups", Cost: 0.60},
			{Name: "Eggs", Amount: "2", Unit: "large", Cost: 0.50},
			{Name: "Mixed frozen vegetables", Amount: "1", Unit: "cup", Cost: 0.80},
			{Name: "Soy sauce", Amount: "3", Unit: "tbsp", Cost: 0.15},
			{Name: "Vegetable oil", Amount: "2", Unit: "tbsp", Cost: 0.10},
			{Name: "Garlic", Amount: "2", Unit: "cloves", Cost: 0.10},
			{Name: "Green onions", Amount: "2", Unit: "stalks", Cost: 0.30},
			{Name: "Sesame oil", Amount: "1", Unit: "tsp", Cost: 0.10},
		},
		Instructions: []string{
			"Heat 1 tbsp oil in large pan or wok over high heat",
			"Scramble eggs and remove from pan",
			"Add remaining oil, then garlic and frozen vegetables",
			"Stir-fry for 2 minutes until vegetables are heated through",
			"Add rice, breaking up any clumps",
			"Return eggs to pan, add soy sauce and sesame oil",
			"Garnish with green onions and serve hot",
		},
		Tags:     []string{"leftovers", "quick", "customizable", "one-pan"},
		Dietary:  []string{"vegetarian"},
		MealType: []string{"lunch", "dinner"},
		Tips: []string{
			"Day-old rice fries better than fresh",
			"Any vegetables work - use what needs eating",
			"Add leftover cooked meat for extra protein",
		},
	},
}
