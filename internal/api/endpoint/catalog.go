package endpoint

import "net/http"

// Auth

func Login() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/auth/login"}
}

func Register() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/auth/register"}
}

func RefreshToken() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/auth/refresh"}
}

func Logout() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/auth/logout"}
}

// Users

func CurrentUser() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/users/me"}
}

func UpdateCurrentUser() Endpoint {
	return Endpoint{Method: http.MethodPut, Path: "/users/me"}
}

func DeleteAccount() Endpoint {
	return Endpoint{Method: http.MethodDelete, Path: "/users/me"}
}

// Food

func SearchFood() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/food/search"}
}

func Food(id string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: expand("/food/{id}", "id", id)}
}

func CreateFood() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/food"}
}

// Food logs

func FoodLogs() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/food/logs"}
}

func CreateFoodLog() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/food/logs"}
}

func FoodLog(id string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: expand("/food/logs/{id}", "id", id)}
}

func UpdateFoodLog(id string) Endpoint {
	return Endpoint{Method: http.MethodPut, Path: expand("/food/logs/{id}", "id", id)}
}

func DeleteFoodLog(id string) Endpoint {
	return Endpoint{Method: http.MethodDelete, Path: expand("/food/logs/{id}", "id", id)}
}

// Nutrition

func NutritionSummary() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/nutrition/summary"}
}

func NutritionGoals() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/nutrition/goals"}
}

func UpdateNutritionGoals() Endpoint {
	return Endpoint{Method: http.MethodPut, Path: "/nutrition/goals"}
}

// Recipes

func Recipes() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/recipes"}
}

func Recipe(id string) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: expand("/recipes/{id}", "id", id)}
}

func CreateRecipe() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/recipes"}
}

// Meal plans

func CurrentMealPlan() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/meal-plans/current"}
}

func GenerateMealPlan() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/meal-plans/generate"}
}

// Progress

func WeightEntries() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/progress/weight"}
}

func CreateWeightEntry() Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "/progress/weight"}
}

func ProgressPhotos() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/progress/photos"}
}

// Health

func Health() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "/health"}
}
