package questions

import "github.com/Nour-Al-Hazzouri/majorly/internal/engine"

// IdealProfile derives an occupation's ideal answers. Every generated task
// question gets the top of the scale, since the occupation performs that
// task; explicit ratings override or extend those defaults.
func IdealProfile(occupationID string, tasks []string, explicit engine.RatingMap, scale engine.Scale) engine.RatingMap {
	profile := make(engine.RatingMap, len(tasks)+len(explicit))
	for _, q := range Situational(occupationID, tasks) {
		profile[q.ID] = scale.Max
	}
	for id, rating := range explicit {
		profile[id] = rating
	}
	return profile
}
