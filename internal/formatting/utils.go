package formatting

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON formats any value as indented JSON for human-readable display.
// It falls back to fmt's %v representation when v cannot be marshaled.
//
// Example:
//
//	fmt.Println(formatting.PrettyJSON(map[string]string{"sessionId": "abc"}))
//	// Output:
//	// {
//	//   "sessionId": "abc"
//	// }
func PrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
