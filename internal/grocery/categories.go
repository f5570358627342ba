// Package grocery maps ingredient names to grocery-store aisles and merges
// duplicate ingredients across recipes into a single shopping view.
package grocery

// Category is one grocery-store aisle. The set is fixed configuration;
// declaration order decides matching precedence.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Keywords []string
}

// CategoryOther is the fallback category id for unmatched ingredients.
const CategoryOther = "other"

// Categories is the ordered aisle table. First matching category wins, so
// more specific aisles (produce, meat, dairy) are declared before pantry.
// "other" carries no keywords and is used purely as fallback.
var Categories = []Category{
	{
		ID:   "produce",
		Name: "Produce",
		Icon: "🥬",
		Keywords: []string{
			"onion", "garlic", "carrot", "celery", "pepper", "bell pepper",
			"tomato", "lettuce", "spinach", "kale", "leek", "potato",
			"squash", "zucchini", "mushroom", "ginger", "cilantro", "parsley",
			"basil", "thyme", "rosemary", "mint", "dill", "chive",
			"lemon", "lime", "orange", "apple", "berry", "banana", "avocado",
			"broccoli", "cauliflower", "cabbage", "corn", "peas", "cucumber",
			"jalapeño", "jalapeno", "serrano", "habanero", "chili", "chile",
			"scallion", "shallot", "green onion", "spring onion",
			"arugula", "romaine", "chard", "bok choy", "asparagus",
			"eggplant", "radish", "turnip", "beet", "sweet potato", "yam",
		},
	},
	{
		ID:   "meat",
		Name: "Meat & Seafood",
		Icon: "🍗",
		Keywords: []string{
			"chicken", "beef", "pork", "lamb", "turkey", "duck", "veal",
			"salmon", "shrimp", "fish", "tuna", "cod", "tilapia", "halibut",
			"sausage", "bacon", "ham", "prosciutto", "pancetta",
			"ground", "steak", "thigh", "breast", "tenderloin", "ribs",
			"drumstick", "wing", "chop", "roast", "filet", "fillet",
			"meatball", "patty", "crab", "lobster", "scallop", "mussel", "clam",
		},
	},
	{
		ID:   "dairy",
		Name: "Dairy & Eggs",
		Icon: "🥛",
		Keywords: []string{
			"milk", "cream", "half and half", "half-and-half",
			"cheese", "butter", "yogurt", "egg", "eggs",
			"sour cream", "crème fraîche", "creme fraiche",
			"feta", "parmesan", "mozzarella", "cheddar", "ricotta",
			"goat cheese", "cream cheese", "cottage cheese", "brie", "gouda",
			"whipping cream", "heavy cream", "buttermilk",
		},
	},
	{
		ID:   "pantry",
		Name: "Pantry",
		Icon: "🥫",
		Keywords: []string{
			"broth", "stock", "oil", "olive oil", "vegetable oil", "sesame oil",
			"vinegar", "sauce", "paste", "tomato paste", "tomato sauce",
			"flour", "sugar", "brown sugar", "powdered sugar",
			"salt", "pepper", "black pepper", "kosher salt", "sea salt",
			"cumin", "paprika", "turmeric", "cinnamon", "nutmeg", "oregano",
			"chili powder", "cayenne", "curry", "garam masala", "coriander",
			"honey", "maple syrup", "molasses", "agave",
			"rice", "pasta", "noodle", "orzo", "quinoa", "couscous", "farro",
			"lentil", "chickpea", "bean", "black bean", "kidney bean", "white bean",
			"coconut milk", "diced tomatoes", "crushed tomatoes",
			"soy sauce", "worcestershire", "fish sauce", "hoisin",
			"mustard", "ketchup", "mayo", "mayonnaise",
			"breadcrumb", "panko", "cornstarch", "baking powder", "baking soda",
			"vanilla", "cocoa", "chocolate", "peanut butter", "almond butter",
			"nuts", "almond", "walnut", "pecan", "cashew", "peanut", "pistachio",
			"dried", "raisin", "cranberry", "apricot",
		},
	},
	{
		ID:       "frozen",
		Name:     "Frozen",
		Icon:     "🧊",
		Keywords: []string{"frozen"},
	},
	{
		ID:   "bakery",
		Name: "Bakery & Bread",
		Icon: "🍞",
		Keywords: []string{
			"bread", "tortilla", "bun", "roll", "pita", "naan", "wrap",
			"bagel", "croissant", "english muffin", "flatbread", "ciabatta",
			"baguette", "sourdough", "rye",
		},
	},
	{
		ID:   CategoryOther,
		Name: "Other",
		Icon: "📦",
	},
}
