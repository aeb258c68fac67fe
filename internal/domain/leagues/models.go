package leagues

// League is static reference data; leagues are configuration, not derived from players.
type League struct {
	ID   int    `json:"id" yaml:"id"`
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Codes returns the league codes in the given order.
func Codes(items []League) []string {
	codes := make([]string, 0, len(items))
	for _, l := range items {
		codes = append(codes, l.Code)
	}
	return codes
}
