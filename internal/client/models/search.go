package models

// Profile is a roommate listing returned by the matching service. Field
// names follow the service's JSON contract.
type Profile struct {
	ID             string `json:"id"`
	City           string `json:"city"`
	Area           string `json:"area"`
	RawProfileText string `json:"raw_profile_text"`
	BudgetPKR      int    `json:"budget_PKR"`
	Cleanliness    string `json:"cleanliness"`
	StudyHabits    string `json:"study_habits"`
	NoiseTolerance string `json:"noise_tolerance"`
	FoodPref       string `json:"food_pref"`
	SleepSchedule  string `json:"sleep_schedule"`
}

// SearchResult is one ranked match. Score is in [0,1]; ranking is performed
// server-side and the order of the response list is preserved as-is.
// Similarity is a server-generated highlight fragment and may carry markup;
// it must be treated as untrusted text by renderers.
type SearchResult struct {
	Score      float64 `json:"score"`
	Profile    Profile `json:"profile"`
	Similarity string  `json:"similarity"`
}
