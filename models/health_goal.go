package models

// HealthGoalFlags marks the dietary intents detected in a user prompt.
// Derived once per prompt; zero value means no goals stated.
type HealthGoalFlags struct {
	Diabetes          bool `json:"diabetes"`
	WeightLoss        bool `json:"weight_loss"`
	HighBloodPressure bool `json:"high_bp"`
}
