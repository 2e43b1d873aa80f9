package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func jsonContains(raw datatypes.JSON, value string) bool {
	if len(raw) == 0 {
		return false
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return false
	}
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// JSONStringList marshals a string slice into a JSON column value.
func JSONStringList(items []string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
