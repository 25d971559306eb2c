package engine

// SkillOverlapScore is the share of required skills the user has, as a
// percentage. An empty user or required set scores 0.
func SkillOverlapScore(required, user SkillSet) float64 {
	if len(required) == 0 || len(user) == 0 {
		return 0
	}

	matched := 0
	for ref := range required {
		if _, ok := user[ref]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(required)) * 100
}

// RatingScore compares a user's ratings with an ideal profile. Each trait
// present in both maps contributes (span - distance) / span; traits missing
// from either side are skipped. No overlap scores 0.
func RatingScore(ideal, user RatingMap, scale Scale) float64 {
	span := scale.Span()
	if len(ideal) == 0 || len(user) == 0 || span <= 0 {
		return 0
	}

	total := 0.0
	considered := 0
	for trait, want := range ideal {
		got, ok := user[trait]
		if !ok {
			continue
		}
		distance := want - got
		if distance < 0 {
			distance = -distance
		}
		total += float64(span-distance) / float64(span)
		considered++
	}

	if considered == 0 {
		return 0
	}

	return total / float64(considered) * 100
}

// mergeRatings returns the union of the given maps. Later maps win on
// duplicate keys.
func mergeRatings(maps ...RatingMap) RatingMap {
	merged := make(RatingMap)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
