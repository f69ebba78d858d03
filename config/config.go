package config

import (
	"os"
	"strconv"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret string

	// Health score weights. Demo defaults are 0.25/0.25/0.30/0.20;
	// override per environment.
	TheftWeight    float64
	RewardsWeight  float64
	TrafficWeight  float64
	EmployeeWeight float64

	// Alert thresholds for the four sub-scores.
	TheftAlertBelow    float64
	RewardsAlertBelow  float64
	TrafficAlertBelow  float64
	EmployeeAlertBelow float64
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from environment variables, falling back to the
// demo defaults for anything unset.
func Load() {
	AppConfig.JWTSecret = os.Getenv("JWT_SECRET")

	AppConfig.TheftWeight = envFloat("HEALTH_WEIGHT_THEFT", 0.25)
	AppConfig.RewardsWeight = envFloat("HEALTH_WEIGHT_REWARDS", 0.25)
	AppConfig.TrafficWeight = envFloat("HEALTH_WEIGHT_TRAFFIC", 0.30)
	AppConfig.EmployeeWeight = envFloat("HEALTH_WEIGHT_EMPLOYEE", 0.20)

	AppConfig.TheftAlertBelow = envFloat("ALERT_THRESHOLD_THEFT", 50)
	AppConfig.RewardsAlertBelow = envFloat("ALERT_THRESHOLD_REWARDS", 50)
	AppConfig.TrafficAlertBelow = envFloat("ALERT_THRESHOLD_TRAFFIC", 40)
	AppConfig.EmployeeAlertBelow = envFloat("ALERT_THRESHOLD_EMPLOYEE", 45)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
