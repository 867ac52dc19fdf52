package skill

import (
	"fmt"
	"strings"
)

var secondaryKeys = func() map[string]SecondarySkill {
	keys := make(map[string]SecondarySkill, len(secondaryNames))
	for s := range secondaryNames {
		keys[Key(s)] = s
	}
	return keys
}()

// Key returns the stable lowercase identifier for s, e.g. "eagle_eye".
// Keys are used in tuning files and never change once published.
func Key(s SecondarySkill) string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "_")
}

// ParseSecondary resolves a tuning-file key to a SecondarySkill.
func ParseSecondary(key string) (SecondarySkill, error) {
	s, ok := secondaryKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Unknown, fmt.Errorf("skill: unknown secondary skill key %q", key)
	}
	return s, nil
}

// ParseTier resolves a tuning-file tier name. The empty string and "none"
// both map to TierNone.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return TierNone, nil
	case "basic":
		return TierBasic, nil
	case "advanced":
		return TierAdvanced, nil
	case "expert":
		return TierExpert, nil
	default:
		return TierNone, fmt.Errorf("skill: unknown tier name %q", name)
	}
}
